// Package teams resolves the free-text team names used by pick intake and
// score providers to one canonical name per franchise.
package teams

import (
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yourusername/pick-settler/internal/models"
)

// MinConfidence is the lowest MatchScore treated as the same team.
const MinConfidence = 50

// aliasTable is built once and never mutated afterwards.
type aliasTable struct {
	global     map[string]string
	bySport    map[models.Sport]map[string]string
	canonicals map[models.Sport][]string
	all        []string
}

var table = sync.OnceValue(buildAliasTable)

func buildAliasTable() *aliasTable {
	t := &aliasTable{
		global:     make(map[string]string),
		bySport:    make(map[models.Sport]map[string]string),
		canonicals: make(map[models.Sport][]string),
	}

	ambiguous := make(map[string]bool)
	seen := make(map[string]bool)

	for _, sport := range models.AllSports {
		sportAliases := make(map[string]string)
		sportAmbiguous := make(map[string]bool)

		for _, f := range leagueFranchises[sport] {
			t.canonicals[sport] = append(t.canonicals[sport], f.name)
			if !seen[f.name] {
				seen[f.name] = true
				t.all = append(t.all, f.name)
			}

			for _, alias := range append([]string{f.name}, f.aliases...) {
				key := Fold(alias)
				if existing, ok := sportAliases[key]; ok && existing != f.name {
					sportAmbiguous[key] = true
				}
				sportAliases[key] = f.name

				if existing, ok := t.global[key]; ok && existing != f.name {
					ambiguous[key] = true
				}
				t.global[key] = f.name
			}
		}

		for key := range sportAmbiguous {
			delete(sportAliases, key)
		}
		t.bySport[sport] = sportAliases
	}

	for key := range ambiguous {
		delete(t.global, key)
	}
	// Canonical names always resolve to themselves, even when a franchise
	// name is also an alias elsewhere.
	for _, name := range t.all {
		t.global[Fold(name)] = name
	}

	sort.Strings(t.all)
	return t
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases a name, strips diacritics and punctuation, and collapses
// whitespace so that "St. Louis", "st louis" and "ST  LOUIS" compare equal.
func Fold(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)
	folded = strings.NewReplacer(".", "", "'", "", "’", "", "-", " ", "_", " ").Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}

// Resolve maps a raw team name to its canonical name across all leagues.
// Unknown names are returned unchanged apart from surrounding whitespace.
func Resolve(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := table().global[Fold(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// ResolveForSport is Resolve with the sport's own aliases taking precedence,
// so "BOS" is the Celtics for an NBA pick and the Bruins for an NHL pick.
func ResolveForSport(sport models.Sport, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if aliases, ok := table().bySport[sport]; ok {
		if canonical, ok := aliases[Fold(trimmed)]; ok {
			return canonical
		}
	}
	return Resolve(trimmed)
}

// MatchScore rates how likely a canonical name and a provider's spelling
// refer to the same team, from 0 to 100.
func MatchScore(canonical, provider string) int {
	a, b := Fold(canonical), Fold(provider)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 90
	}

	shared := sharedTokens(a, b)
	if shared == 0 {
		return 0
	}
	score := 70 + 5*shared
	if score > 100 {
		score = 100
	}
	return score
}

// sharedTokens counts distinct tokens longer than two characters present in both names.
func sharedTokens(a, b string) int {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(a) {
		if utf8.RuneCountInString(tok) > 2 {
			tokens[tok] = true
		}
	}
	count := 0
	for _, tok := range strings.Fields(b) {
		if tokens[tok] {
			count++
			delete(tokens, tok)
		}
	}
	return count
}

// Suggest returns up to limit canonical names that resemble raw, closest
// first. An empty sport searches every league.
func Suggest(sport models.Sport, raw string, limit int) []string {
	candidates := table().all
	if names, ok := table().canonicals[sport]; ok {
		candidates = names
	}

	best := make(map[string]int)
	queries := append([]string{strings.TrimSpace(raw)}, strings.Fields(raw)...)
	for _, q := range queries {
		if utf8.RuneCountInString(q) <= 2 {
			continue
		}
		for _, rank := range fuzzy.RankFindNormalizedFold(q, candidates) {
			if d, ok := best[rank.Target]; !ok || rank.Distance < d {
				best[rank.Target] = rank.Distance
			}
		}
	}

	names := make([]string, 0, len(best))
	for name := range best {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if best[names[i]] != best[names[j]] {
			return best[names[i]] < best[names[j]]
		}
		return names[i] < names[j]
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}
