package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pick-settler/internal/models"
)

func TestNormalizeSegment(t *testing.T) {
	tests := []struct {
		label    string
		expected models.Segment
	}{
		{"1st Half", models.SegmentFirstHalf},
		{"1H", models.SegmentFirstHalf},
		{"first half", models.SegmentFirstHalf},
		{"1st-half", models.SegmentFirstHalf},
		{" h1 ", models.SegmentFirstHalf},
		{"2nd Half", models.SegmentSecondHalf},
		{"SECOND HALF", models.SegmentSecondHalf},
		{"2H", models.SegmentSecondHalf},
		{"Full Game", models.SegmentFullGame},
		{"FG", models.SegmentFullGame},
		{"", models.SegmentFullGame},
		{"3rd quarter", models.SegmentFullGame},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSegment(tt.label))
		})
	}
}

func TestGetSegmentScores(t *testing.T) {
	game := finalGame("Boston Celtics", "Los Angeles Lakers", 112, 108)

	fg := GetSegmentScores(NormalizeSegment("full game"), &game)
	require.NotNil(t, fg)
	assert.Equal(t, 112, *fg.Home)
	assert.Equal(t, 108, *fg.Away)

	// Half data has not arrived; the full-game score does not stand in for it.
	assert.Nil(t, GetSegmentScores(NormalizeSegment("1st Half"), &game))
	assert.Nil(t, GetSegmentScores(models.SegmentSecondHalf, &game))

	first := models.NewScorePair(55, 52)
	game.HalfScores = models.BuildHalfScores(&first, game.HomeScore, game.AwayScore)

	h2 := GetSegmentScores(models.SegmentSecondHalf, &game)
	require.NotNil(t, h2)
	assert.Equal(t, 57, *h2.Home)
	assert.Equal(t, 56, *h2.Away)

	assert.Nil(t, GetSegmentScores(models.SegmentFullGame, nil))
}

func TestGetSegmentScoresIncompleteHalf(t *testing.T) {
	game := finalGame("Boston Celtics", "Los Angeles Lakers", 112, 108)
	game.HalfScores[models.HalfFirst] = models.ScorePair{Home: intPtr(55)}

	assert.Nil(t, GetSegmentScores(models.SegmentFirstHalf, &game))
}
