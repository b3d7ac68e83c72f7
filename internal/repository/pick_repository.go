package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/yourusername/pick-settler/internal/database"
	"github.com/yourusername/pick-settler/internal/models"
)

const (
	errScanPick = "failed to scan pick: %w"

	pickColumns = `id, sport, home_team, away_team, pick_type, pick_direction, pick_team,
		line, odds, risk, to_win, segment, status, result, pnl, game_date,
		final_score, segment_score, grade_note, graded_at, created_at, updated_at`
)

// PostgresPickRepository implements PickRepository for PostgreSQL
type PostgresPickRepository struct {
	db *database.DB
}

// NewPostgresPickRepository creates a new pick repository
func NewPostgresPickRepository(db *database.DB) PickRepository {
	return &PostgresPickRepository{db: db}
}

// Find retrieves picks matching the filter ordered by game date
func (r *PostgresPickRepository) Find(ctx context.Context, filter PickFilter) ([]*models.Pick, error) {
	var (
		conditions []string
		args       []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "status = ANY("+arg(statuses)+")")
	}
	if filter.Sport != "" {
		conditions = append(conditions, "sport = "+arg(string(filter.Sport)))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, "game_date >= "+arg(filter.From))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, "game_date <= "+arg(filter.To))
	}

	query := "SELECT " + pickColumns + " FROM picks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY game_date ASC, id ASC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}
	defer rows.Close()

	var picks []*models.Pick
	for rows.Next() {
		pick, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanPick, err)
		}
		picks = append(picks, pick)
	}

	return picks, rows.Err()
}

// GetByID retrieves a pick by ID
func (r *PostgresPickRepository) GetByID(ctx context.Context, id string) (*models.Pick, error) {
	row := r.db.GetPool().QueryRow(ctx, "SELECT "+pickColumns+" FROM picks WHERE id = $1", id)

	pick, err := scanPick(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pick: %w", err)
	}

	return pick, nil
}

// Upsert inserts a pick or replaces every column of an existing one
func (r *PostgresPickRepository) Upsert(ctx context.Context, pick *models.Pick) error {
	query := `
		INSERT INTO picks (id, sport, home_team, away_team, pick_type, pick_direction, pick_team,
			line, odds, risk, to_win, segment, status, result, pnl, game_date,
			final_score, segment_score, grade_note, graded_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, COALESCE($21, NOW()), NOW())
		ON CONFLICT (id) DO UPDATE SET
			sport = EXCLUDED.sport,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			pick_type = EXCLUDED.pick_type,
			pick_direction = EXCLUDED.pick_direction,
			pick_team = EXCLUDED.pick_team,
			line = EXCLUDED.line,
			odds = EXCLUDED.odds,
			risk = EXCLUDED.risk,
			to_win = EXCLUDED.to_win,
			segment = EXCLUDED.segment,
			status = EXCLUDED.status,
			result = EXCLUDED.result,
			pnl = EXCLUDED.pnl,
			game_date = EXCLUDED.game_date,
			final_score = EXCLUDED.final_score,
			segment_score = EXCLUDED.segment_score,
			grade_note = EXCLUDED.grade_note,
			graded_at = EXCLUDED.graded_at,
			updated_at = NOW()
	`

	var createdAt interface{}
	if !pick.CreatedAt.IsZero() {
		createdAt = pick.CreatedAt
	}

	_, err := r.db.GetPool().Exec(ctx, query,
		pick.ID, pick.Sport, pick.HomeTeam, pick.AwayTeam, pick.PickType, pick.PickDirection, pick.PickTeam,
		pick.Line, pick.Odds, pick.Risk, pick.ToWin, pick.Segment, pick.Status, pick.Result, pick.PnL, pick.GameDate,
		pick.FinalScore, pick.SegmentScore, pick.GradeNote, pick.GradedAt, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert pick: %w", err)
	}

	return nil
}

// Settle writes the settlement columns if the pick is still pending or live
func (r *PostgresPickRepository) Settle(ctx context.Context, pick *models.Pick) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var status models.PickStatus
		err := tx.QueryRow(ctx, "SELECT status FROM picks WHERE id = $1 FOR UPDATE", pick.ID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock pick: %w", err)
		}
		if !status.IsActive() {
			return fmt.Errorf("%w: status is %s", models.ErrAlreadySettled, status)
		}

		query := `
			UPDATE picks
			SET status = $2, result = $3, pnl = $4, final_score = $5, segment_score = $6,
				grade_note = $7, graded_at = $8, updated_at = $9
			WHERE id = $1
		`
		if _, err := tx.Exec(ctx, query,
			pick.ID, pick.Status, pick.Result, pick.PnL, pick.FinalScore, pick.SegmentScore,
			pick.GradeNote, pick.GradedAt, pick.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to settle pick: %w", err)
		}
		return nil
	})
}

func scanPick(row pgx.Row) (*models.Pick, error) {
	pick := &models.Pick{}
	err := row.Scan(
		&pick.ID, &pick.Sport, &pick.HomeTeam, &pick.AwayTeam, &pick.PickType, &pick.PickDirection, &pick.PickTeam,
		&pick.Line, &pick.Odds, &pick.Risk, &pick.ToWin, &pick.Segment, &pick.Status, &pick.Result, &pick.PnL,
		&pick.GameDate, &pick.FinalScore, &pick.SegmentScore, &pick.GradeNote, &pick.GradedAt,
		&pick.CreatedAt, &pick.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pick, nil
}
