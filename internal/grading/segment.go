package grading

import (
	"strings"

	"github.com/yourusername/pick-settler/internal/models"
)

var segmentLabels = map[string]models.Segment{
	"1h":         models.SegmentFirstHalf,
	"h1":         models.SegmentFirstHalf,
	"1sthalf":    models.SegmentFirstHalf,
	"firsthalf":  models.SegmentFirstHalf,
	"half1":      models.SegmentFirstHalf,
	"1half":      models.SegmentFirstHalf,
	"2h":         models.SegmentSecondHalf,
	"h2":         models.SegmentSecondHalf,
	"2ndhalf":    models.SegmentSecondHalf,
	"secondhalf": models.SegmentSecondHalf,
	"half2":      models.SegmentSecondHalf,
	"2half":      models.SegmentSecondHalf,
	"fg":         models.SegmentFullGame,
	"fullgame":   models.SegmentFullGame,
	"game":       models.SegmentFullGame,
	"full":       models.SegmentFullGame,
	"match":      models.SegmentFullGame,
	"fullmatch":  models.SegmentFullGame,
}

// NormalizeSegment maps a free-text segment label to FG, 1H or 2H.
// Unrecognized labels are treated as the full game.
func NormalizeSegment(label string) models.Segment {
	compact := strings.ToLower(strings.Join(strings.Fields(label), ""))
	compact = strings.NewReplacer("-", "", "_", "", ".", "").Replace(compact)
	if seg, ok := segmentLabels[compact]; ok {
		return seg
	}
	return models.SegmentFullGame
}

// GetSegmentScores returns the score pair a segment is graded on, or nil
// when that data has not arrived yet.
func GetSegmentScores(segment models.Segment, game *models.Game) *models.ScorePair {
	if game == nil {
		return nil
	}

	var pair models.ScorePair
	switch segment {
	case models.SegmentFirstHalf:
		pair = game.HalfScores[models.HalfFirst]
	case models.SegmentSecondHalf:
		pair = game.HalfScores[models.HalfSecond]
	default:
		pair = game.FinalPair()
	}

	if !pair.Complete() {
		return nil
	}
	return &pair
}
