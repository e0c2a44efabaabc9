package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/pkg"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already in use")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create inserts a new user and returns its id. A taken email yields
// ErrEmailExists.
func (r *Repo) Create(ctx context.Context, u User) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal := u.FitnessGoal
	if goal == "" {
		goal = GoalNone
	}

	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users
				(name, email, password_hash, age, gender, fitness_goal)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		u.Name, u.Email, u.PasswordHash, u.Age, u.Gender, string(goal),
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}

	span.SetAttributes(attribute.Int64("user.id", id))
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, age, gender,
				height_cm, weight_kg, target_weight_kg, fitness_goal, created_at
			FROM users WHERE id = $1;`,
		id,
	))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, age, gender,
				height_cm, weight_kg, target_weight_kg, fitness_goal, created_at
			FROM users WHERE email = $1;`,
		email,
	))
}

func (r *Repo) scanOne(row pgx.Row) (*User, error) {
	var u User
	var goal string
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Age, &u.Gender,
		&u.HeightCm, &u.WeightKg, &u.TargetWeightKg, &goal, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("row scan: %w", err)
	}
	u.FitnessGoal = FitnessGoalFromString(goal)
	return &u, nil
}

// AllUserIDs returns the IDs of all known users.
func (r *Repo) AllUserIDs(ctx context.Context) (_ []int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.allUserIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id FROM users ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(ids)))
	return ids, nil
}

// DisplayNames resolves user IDs to display names. IDs with no
// matching user are simply absent from the result.
func (r *Repo) DisplayNames(ctx context.Context, ids []int64) (_ map[int64]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.displayNames")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name FROM users WHERE id = ANY($1);`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

type UpdateProfileParams struct {
	HeightCm       *float64
	WeightKg       *float64
	TargetWeightKg *float64
	FitnessGoal    FitnessGoal
}

func (r *Repo) UpdateProfile(ctx context.Context, id int64, params UpdateProfileParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users
			SET height_cm = $1, weight_kg = $2, target_weight_kg = $3, fitness_goal = $4
			WHERE id = $5;`,
		params.HeightCm, params.WeightKg, params.TargetWeightKg, string(params.FitnessGoal), id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateWeight sets the user's current weight, used when a new weight log comes in.
func (r *Repo) UpdateWeight(ctx context.Context, id int64, weightKg float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.user.updateWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET weight_kg = $1 WHERE id = $2;`,
		weightKg, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
