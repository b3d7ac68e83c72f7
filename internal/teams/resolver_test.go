package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/pick-settler/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Canonical name", "Boston Celtics", "Boston Celtics"},
		{"Nickname", "Lakers", "Los Angeles Lakers"},
		{"City prefix alias", "LA Lakers", "Los Angeles Lakers"},
		{"Abbreviation upper case", "GSW", "Golden State Warriors"},
		{"Extra whitespace", "  golden   state ", "Golden State Warriors"},
		{"Punctuation", "St. Louis Blues", "St. Louis Blues"},
		{"Diacritics", "Montréal Canadiens", "Montreal Canadiens"},
		{"Unknown returned unchanged", "Unknown Team XYZ", "Unknown Team XYZ"},
		{"Unknown trimmed", "  Some Club ", "Some Club"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.raw))
		})
	}
}

func TestResolveAmbiguousAliasStaysUnresolved(t *testing.T) {
	// "BOS" is the Celtics, Bruins and Red Sox.
	assert.Equal(t, "BOS", Resolve("BOS"))
	assert.Equal(t, "Boston Celtics", ResolveForSport(models.SportNBA, "BOS"))
	assert.Equal(t, "Boston Bruins", ResolveForSport(models.SportNHL, "BOS"))
	assert.Equal(t, "Boston Red Sox", ResolveForSport(models.SportMLB, "bos"))
}

func TestResolveForSportSharedNickname(t *testing.T) {
	assert.Equal(t, "New York Rangers", ResolveForSport(models.SportNHL, "Rangers"))
	assert.Equal(t, "Texas Rangers", ResolveForSport(models.SportMLB, "Rangers"))
	assert.Equal(t, "New York Giants", ResolveForSport(models.SportNFL, "Giants"))
	assert.Equal(t, "San Francisco Giants", ResolveForSport(models.SportMLB, "Giants"))
}

func TestResolveForSportAmbiguousWithinLeague(t *testing.T) {
	// Two NBA franchises play in Los Angeles; neither owns the bare city.
	assert.Equal(t, "Los Angeles", ResolveForSport(models.SportNBA, "Los Angeles"))
}

func TestResolveForSportFallsBackToGlobal(t *testing.T) {
	assert.Equal(t, "Boston Celtics", ResolveForSport(models.SportNFL, "Celtics"))
	assert.Equal(t, "Duke Blue Devils", ResolveForSport(models.SportNCAAB, "Duke"))
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		provider  string
		expected  int
	}{
		{"Exact", "Boston Celtics", "Boston Celtics", 100},
		{"Exact case-insensitive", "Boston Celtics", "BOSTON CELTICS", 100},
		{"Provider substring", "Los Angeles Lakers", "Lakers", 90},
		{"Canonical substring", "Lakers", "Los Angeles Lakers", 90},
		{"One shared token", "Los Angeles Lakers", "LA Lakers", 75},
		{"Three shared tokens", "New York Knicks Basketball", "Knicks New York", 85},
		{"Short tokens ignored", "LA Kings", "LA Clippers", 0},
		{"No overlap", "Boston Celtics", "Miami Heat", 0},
		{"Empty provider", "Boston Celtics", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchScore(tt.canonical, tt.provider))
		})
	}
}

func TestMatchScoreBounded(t *testing.T) {
	a := "alpha bravo charlie delta echo foxtrot golf hotel"
	b := "hotel golf foxtrot echo delta charlie bravo alpha"
	score := MatchScore(a, b)
	assert.LessOrEqual(t, score, 100)
	assert.GreaterOrEqual(t, score, 0)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "st louis blues", Fold("  St. Louis   Blues "))
	assert.Equal(t, "d backs", Fold("D-Backs"))
	assert.Equal(t, "as", Fold("A's"))
	assert.Equal(t, "montreal", Fold("Montréal"))
}

func TestSuggest(t *testing.T) {
	suggestions := Suggest(models.SportNBA, "Celtcs Boston", 3)
	assert.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions, "Boston Celtics")
	assert.LessOrEqual(t, len(suggestions), 3)

	assert.Empty(t, Suggest(models.SportNBA, "zz", 3))
}
