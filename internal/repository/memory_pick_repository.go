package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/yourusername/pick-settler/internal/models"
)

// MemoryPickRepository is a process-local PickRepository used for dry runs
// and tests. Picks are copied in and out so callers never share state.
type MemoryPickRepository struct {
	mu    sync.RWMutex
	picks map[string]models.Pick
	now   func() time.Time
}

// NewMemoryPickRepository creates an empty in-memory repository
func NewMemoryPickRepository() *MemoryPickRepository {
	return &MemoryPickRepository{
		picks: make(map[string]models.Pick),
		now:   time.Now,
	}
}

// seedPick decodes amounts as entered upstream: numbers or strings such
// as "$1,100". Anything non-numeric becomes an empty amount.
type seedPick struct {
	models.Pick
	Line  json.RawMessage `json:"line"`
	Risk  json.RawMessage `json:"risk"`
	ToWin json.RawMessage `json:"toWin"`
}

func seedAmount(raw json.RawMessage) decimal.NullDecimal {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return models.ParseAmount(s)
	}
	if string(raw) == "null" {
		return decimal.NullDecimal{}
	}
	return models.ParseAmount(string(raw))
}

// LoadJSON seeds the repository from a JSON array of picks. Every pick is
// validated before any is stored.
func (r *MemoryPickRepository) LoadJSON(reader io.Reader) (int, error) {
	var seeds []seedPick
	if err := json.NewDecoder(reader).Decode(&seeds); err != nil {
		return 0, fmt.Errorf("failed to decode picks: %w", err)
	}

	picks := make([]models.Pick, len(seeds))
	for i, seed := range seeds {
		picks[i] = seed.Pick
		picks[i].Line = seedAmount(seed.Line)
		picks[i].Risk = seedAmount(seed.Risk)
		picks[i].ToWin = seedAmount(seed.ToWin)
	}

	validate := validator.New()
	for i := range picks {
		if err := validate.Struct(&picks[i]); err != nil {
			return 0, fmt.Errorf("%w: pick %d (%s): %v", models.ErrInvalidPick, i, picks[i].ID, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range picks {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = r.now()
		}
		r.picks[p.ID] = p
	}
	return len(picks), nil
}

// Find retrieves picks matching the filter ordered by game date
func (r *MemoryPickRepository) Find(_ context.Context, filter PickFilter) ([]*models.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var picks []*models.Pick
	for _, p := range r.picks {
		if filter.Matches(&p) {
			pick := p
			picks = append(picks, &pick)
		}
	}

	sort.Slice(picks, func(i, j int) bool {
		if !picks[i].GameDate.Equal(picks[j].GameDate) {
			return picks[i].GameDate.Before(picks[j].GameDate)
		}
		return picks[i].ID < picks[j].ID
	})
	if filter.Limit > 0 && len(picks) > filter.Limit {
		picks = picks[:filter.Limit]
	}
	return picks, nil
}

// GetByID retrieves a pick by ID
func (r *MemoryPickRepository) GetByID(_ context.Context, id string) (*models.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.picks[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

// Upsert inserts or replaces a pick
func (r *MemoryPickRepository) Upsert(_ context.Context, pick *models.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *pick
	if existing, ok := r.picks[p.ID]; ok && p.CreatedAt.IsZero() {
		p.CreatedAt = existing.CreatedAt
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now()
	}
	p.UpdatedAt = r.now()
	r.picks[p.ID] = p
	return nil
}

// Settle writes the settlement fields if the stored pick is still active
func (r *MemoryPickRepository) Settle(_ context.Context, pick *models.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.picks[pick.ID]
	if !ok {
		return models.ErrNotFound
	}
	if !stored.Status.IsActive() {
		return fmt.Errorf("%w: status is %s", models.ErrAlreadySettled, stored.Status)
	}

	stored.Status = pick.Status
	stored.Result = pick.Result
	stored.PnL = pick.PnL
	stored.FinalScore = pick.FinalScore
	stored.SegmentScore = pick.SegmentScore
	stored.GradeNote = pick.GradeNote
	stored.GradedAt = pick.GradedAt
	stored.UpdatedAt = pick.UpdatedAt
	r.picks[pick.ID] = stored
	return nil
}

// All returns every stored pick ordered by id
func (r *MemoryPickRepository) All() []*models.Pick {
	picks, _ := r.Find(context.Background(), PickFilter{})
	sort.Slice(picks, func(i, j int) bool { return picks[i].ID < picks[j].ID })
	return picks
}
