package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p := &Profile{UserID: userID}
	err = r.db.QueryRow(ctx, `
		SELECT p.full_name, p.age, p.height_cm::float8, p.weight_kg::float8,
		       up.goal, up.fitness_level, up.training_days, up.preferred_muscle_groups,
		       p.created_at, GREATEST(p.updated_at, up.updated_at)
		FROM profiles p
		JOIN user_preferences up ON up.user_id = p.user_id
		WHERE p.user_id = $1
	`, userID).Scan(
		&p.FullName, &p.Age, &p.HeightCm, &p.WeightKg,
		&p.Preferences.Goal, &p.Preferences.FitnessLevel, &p.Preferences.TrainingDays, &p.Preferences.PreferredMuscleGroups,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create stores a new profile and its preferences in one transaction.
func (r *Repo) Create(ctx context.Context, p *Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.create")
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

	err = tx.QueryRow(ctx, `
		INSERT INTO profiles (user_id, full_name, age, height_cm, weight_kg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, p.UserID, p.FullName, p.Age, p.HeightCm, p.WeightKg).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO user_preferences (user_id, goal, fitness_level, training_days, preferred_muscle_groups)
		VALUES ($1, $2, $3, $4, $5)
	`,
		p.UserID,
		p.Preferences.Goal, p.Preferences.FitnessLevel,
		p.Preferences.TrainingDays, p.Preferences.PreferredMuscleGroups,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	return p, nil
}

// Update replaces an existing profile (the re-setup flow).
func (r *Repo) Update(ctx context.Context, p *Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
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

	err = tx.QueryRow(ctx, `
		UPDATE profiles
		SET full_name = $2, age = $3, height_cm = $4, weight_kg = $5, updated_at = NOW()
		WHERE user_id = $1
		RETURNING created_at, updated_at
	`, p.UserID, p.FullName, p.Age, p.HeightCm, p.WeightKg).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO user_preferences (user_id, goal, fitness_level, training_days, preferred_muscle_groups)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET goal = EXCLUDED.goal,
		    fitness_level = EXCLUDED.fitness_level,
		    training_days = EXCLUDED.training_days,
		    preferred_muscle_groups = EXCLUDED.preferred_muscle_groups,
		    updated_at = NOW()
	`,
		p.UserID,
		p.Preferences.Goal, p.Preferences.FitnessLevel,
		p.Preferences.TrainingDays, p.Preferences.PreferredMuscleGroups,
	); err != nil {
		return nil, err
	}

	return p, nil
}
