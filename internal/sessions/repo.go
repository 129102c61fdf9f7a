package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

const sessionColumns = `
	s.id, s.workout_plan_id, s.user_id, s.day_name, s.title, s.session_date,
	s.exercises, p.plan_data, s.is_completed, s.completed_at, s.created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListWeek returns the sessions dated within the week, ordered by date.
func (r *Repo) ListWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listweek")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("week-start", weekStart.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions s
		JOIN workout_plans p ON p.id = s.workout_plan_id
		WHERE s.user_id = $1
		  AND s.session_date >= $2
		  AND s.session_date < $3
		ORDER BY s.session_date, s.created_at
	`, userID, weekStart, WeekEnd(weekStart))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// CreateWeek stores a new week. It fails with ErrWeekExists when the week
// got sessions in the meantime.
func (r *Repo) CreateWeek(ctx context.Context, nw NewWeek) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.createweek")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = lockUser(ctx, tx, nw.UserID); err != nil {
		return nil, err
	}

	var existing int
	if err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout_sessions
		WHERE user_id = $1 AND session_date >= $2 AND session_date < $3
	`, nw.UserID, nw.Start, WeekEnd(nw.Start)).Scan(&existing); err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrWeekExists
	}

	return insertWeek(ctx, tx, nw)
}

// ReplaceWeek deletes the week's sessions and plans and inserts the new
// ones in the same transaction.
func (r *Repo) ReplaceWeek(ctx context.Context, nw NewWeek) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.replaceweek")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = lockUser(ctx, tx, nw.UserID); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, `
		DELETE FROM workout_sessions
		WHERE user_id = $1 AND session_date >= $2 AND session_date < $3
	`, nw.UserID, nw.Start, WeekEnd(nw.Start)); err != nil {
		return nil, fmt.Errorf("delete week sessions: %w", err)
	}
	if _, err = tx.Exec(ctx, `
		DELETE FROM workout_plans
		WHERE user_id = $1 AND week_start_date = $2
	`, nw.UserID, nw.Start); err != nil {
		return nil, fmt.Errorf("delete week plans: %w", err)
	}

	return insertWeek(ctx, tx, nw)
}

func lockUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID.String())
	if err != nil {
		return fmt.Errorf("lock user week: %w", err)
	}
	return nil
}

func insertWeek(ctx context.Context, tx pgx.Tx, nw NewWeek) ([]Session, error) {
	metaJSON, err := json.Marshal(nw.Meta)
	if err != nil {
		return nil, fmt.Errorf("marshal plan meta: %w", err)
	}

	var planID uuid.UUID
	if err := tx.QueryRow(ctx, `
		INSERT INTO workout_plans (user_id, week_start_date, plan_data)
		VALUES ($1, $2, $3)
		RETURNING id
	`, nw.UserID, nw.Start, metaJSON).Scan(&planID); err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	sessions := make([]Session, 0, len(nw.Templates))
	for i, tmpl := range nw.Templates {
		exercisesJSON, err := json.Marshal(tmpl.Exercises)
		if err != nil {
			return nil, fmt.Errorf("marshal exercises: %w", err)
		}

		s := Session{
			PlanID:     planID,
			UserID:     nw.UserID,
			DayName:    tmpl.Day,
			Title:      tmpl.Title,
			Date:       nw.Start.AddDate(0, 0, i),
			Exercises:  tmpl.Exercises,
			Difficulty: nw.Meta.Difficulty,
			Duration:   nw.Meta.Duration,
		}
		if err := tx.QueryRow(ctx, `
			INSERT INTO workout_sessions (workout_plan_id, user_id, day_name, title, session_date, exercises)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, planID, nw.UserID, s.DayName, s.Title, s.Date, exercisesJSON).Scan(&s.ID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert session %d: %w", i, err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *Repo) MarkComplete(ctx context.Context, userID, sessionID uuid.UUID, at time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.markcomplete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("session-id", sessionID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_sessions
		SET is_completed = TRUE, completed_at = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, sessionID, userID, at)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrSessionNotFound
	}

	return r.Get(ctx, userID, sessionID)
}

func (r *Repo) Get(ctx context.Context, userID, sessionID uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions s
		JOIN workout_plans p ON p.id = s.workout_plan_id
		WHERE s.id = $1 AND s.user_id = $2
	`, sessionID, userID)
	return scanOne(row)
}

// GetByDate returns the first session dated on date.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getbydate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions s
		JOIN workout_plans p ON p.id = s.workout_plan_id
		WHERE s.user_id = $1 AND s.session_date = $2
		ORDER BY s.created_at
		LIMIT 1
	`, userID, date)
	return scanOne(row)
}

func (r *Repo) LastCompleted(ctx context.Context, userID uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.lastcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions s
		JOIN workout_plans p ON p.id = s.workout_plan_id
		WHERE s.user_id = $1 AND s.is_completed
		ORDER BY s.completed_at DESC NULLS LAST
		LIMIT 1
	`, userID)
	return scanOne(row)
}

func scanOne(row pgx.Row) (*Session, error) {
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var (
		s             Session
		exercisesJSON []byte
		metaJSON      []byte
	)
	if err := row.Scan(
		&s.ID, &s.PlanID, &s.UserID, &s.DayName, &s.Title, &s.Date,
		&exercisesJSON, &metaJSON, &s.IsCompleted, &s.CompletedAt, &s.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(exercisesJSON, &s.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises of session %s: %w", s.ID, err)
	}

	var meta PlanMeta
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return nil, fmt.Errorf("unmarshal plan meta of session %s: %w", s.ID, err)
		}
	}
	s.Difficulty = meta.Difficulty
	s.Duration = meta.Duration

	return &s, nil
}
