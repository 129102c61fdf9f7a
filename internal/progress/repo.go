package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const entryColumns = `
	id, user_id, workout_session_id, exercise_name, weight_used::float8, reps_completed,
	difficulty_rating, body_weight::float8, COALESCE(notes, ''), created_at`

// Add appends an entry. The referenced session must belong to the same user.
func (r *Repo) Add(ctx context.Context, e Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", e.SessionID.String()))

	var notes *string
	if e.Notes != "" {
		notes = &e.Notes
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_progress
			(user_id, workout_session_id, exercise_name, weight_used, reps_completed, difficulty_rating, body_weight, notes)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE EXISTS (SELECT 1 FROM workout_sessions ws WHERE ws.id = $2 AND ws.user_id = $1)
		RETURNING id, created_at
	`, e.UserID, e.SessionID, e.ExerciseName, e.WeightUsed, e.Reps, e.Difficulty, e.BodyWeight, notes,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *Repo) ListBySession(ctx context.Context, userID, sessionID uuid.UUID) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listbysession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM workout_progress
		WHERE user_id = $1 AND workout_session_id = $2
		ORDER BY created_at
	`, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

const measurementColumns = `
	id, user_id, body_weight::float8, arm_cm::float8, chest_cm::float8, waist_cm::float8,
	thigh_cm::float8, created_at`

func (r *Repo) AddMeasurement(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addmeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO body_measurements (user_id, body_weight, arm_cm, chest_cm, waist_cm, thigh_cm)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, m.UserID, m.BodyWeight, m.ArmCm, m.ChestCm, m.WaistCm, m.ThighCm,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// ListMeasurements returns the latest check-ins first.
func (r *Repo) ListMeasurements(ctx context.Context, userID uuid.UUID, limit int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listmeasurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT `+measurementColumns+`
		FROM body_measurements
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Measurement
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.BodyWeight, &m.ArmCm, &m.ChestCm, &m.WaistCm, &m.ThighCm, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Dashboard aggregates the user's history. weekStart bounds the current
// week counters, today ends the streak.
func (r *Repo) Dashboard(ctx context.Context, userID uuid.UUID, weekStart, today time.Time) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	d := &Dashboard{
		WeekStart:  weekStart,
		BodyWeight: []BodyWeightPoint{},
		Recent:     []Entry{},
	}
	weekEnd := weekStart.AddDate(0, 0, 7)

	err = r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE is_completed),
			COUNT(*) FILTER (WHERE is_completed AND session_date >= $2 AND session_date < $3),
			COUNT(*) FILTER (WHERE session_date >= $2 AND session_date < $3)
		FROM workout_sessions
		WHERE user_id = $1
	`, userID, weekStart, weekEnd).Scan(&d.CompletedTotal, &d.CompletedThisWeek, &d.SessionsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	var last CompletedSession
	err = r.db.QueryRow(ctx, `
		SELECT id, day_name, title, completed_at
		FROM workout_sessions
		WHERE user_id = $1 AND is_completed AND completed_at IS NOT NULL
		ORDER BY completed_at DESC
		LIMIT 1
	`, userID).Scan(&last.ID, &last.DayName, &last.Title, &last.CompletedAt)
	switch {
	case err == nil:
		d.LastCompleted = &last
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("last completed: %w", err)
	}

	d.Streak, err = r.streak(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("streak: %w", err)
	}

	var latest Measurements
	err = r.db.QueryRow(ctx, `
		SELECT
			(array_agg(arm_cm::float8 ORDER BY created_at DESC) FILTER (WHERE arm_cm IS NOT NULL))[1],
			(array_agg(chest_cm::float8 ORDER BY created_at DESC) FILTER (WHERE chest_cm IS NOT NULL))[1],
			(array_agg(waist_cm::float8 ORDER BY created_at DESC) FILTER (WHERE waist_cm IS NOT NULL))[1],
			(array_agg(thigh_cm::float8 ORDER BY created_at DESC) FILTER (WHERE thigh_cm IS NOT NULL))[1]
		FROM body_measurements
		WHERE user_id = $1
	`, userID).Scan(&latest.ArmCm, &latest.ChestCm, &latest.WaistCm, &latest.ThighCm)
	if err != nil {
		return nil, fmt.Errorf("latest measurements: %w", err)
	}
	if !latest.empty() {
		d.LatestMeasurements = &latest
	}

	// weights logged with an exercise and standalone check-ins form one history
	rows, err := r.db.Query(ctx, `
		SELECT created_at, weight FROM (
			SELECT created_at, body_weight::float8 AS weight
			FROM workout_progress
			WHERE user_id = $1 AND body_weight IS NOT NULL
			UNION ALL
			SELECT created_at, body_weight::float8 AS weight
			FROM body_measurements
			WHERE user_id = $1 AND body_weight IS NOT NULL
		) w
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, bodyWeightHistorySize)
	if err != nil {
		return nil, fmt.Errorf("body weight history: %w", err)
	}
	for rows.Next() {
		var p BodyWeightPoint
		if err := rows.Scan(&p.Date, &p.Weight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		d.BodyWeight = append(d.BodyWeight, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM workout_progress
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, recentEntriesSize)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	recent, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	d.Recent = append(d.Recent, recent...)

	return d, nil
}

func (r *Repo) streak(ctx context.Context, userID uuid.UUID, today time.Time) (int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT completed_at
		FROM workout_sessions
		WHERE user_id = $1 AND is_completed AND completed_at >= $2
		ORDER BY completed_at DESC
	`, userID, today.AddDate(0, 0, -streakLookbackDays))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var completedAt []time.Time
	for rows.Next() {
		var c time.Time
		if err := rows.Scan(&c); err != nil {
			return 0, fmt.Errorf("rows scan: %w", err)
		}
		completedAt = append(completedAt, c)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return Streak(completedAt, today), nil
}

func scanEntries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			sessionID *uuid.UUID
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &sessionID, &e.ExerciseName, &e.WeightUsed, &e.Reps,
			&e.Difficulty, &e.BodyWeight, &e.Notes, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if sessionID != nil {
			e.SessionID = *sessionID
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
