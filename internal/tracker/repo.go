package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/pkg"
)

// ErrUserGone is returned when an activity record references a user that no longer exists.
var ErrUserGone = errors.New("user no longer exists")

type Repo struct {
	db *pgxpool.Pool
}

// insertErr maps user_id FK violations to ErrUserGone.
func insertErr(err error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return ErrUserGone
	}
	return err
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddWorkout(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workouts
				(user_id, type, duration_minutes, calories_burned, performed_at, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		w.UserID, w.Type, w.DurationMinutes, w.CaloriesBurned, w.PerformedAt, w.Notes,
	).Scan(&w.ID)
	if err != nil {
		return nil, insertErr(err)
	}

	span.SetAttributes(attribute.Int64("workout.id", w.ID))
	return &w, nil
}

func (r *Repo) WorkoutsInRange(ctx context.Context, userID int64, from, to time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.workoutsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, type, duration_minutes, calories_burned, performed_at, notes
			FROM workouts
			WHERE user_id = $1 AND performed_at BETWEEN $2 AND $3
			ORDER BY performed_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

// AllWorkoutsInRange returns workouts of all users within the given range.
func (r *Repo) AllWorkoutsInRange(ctx context.Context, from, to time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.allWorkoutsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, type, duration_minutes, calories_burned, performed_at, notes
			FROM workouts
			WHERE performed_at BETWEEN $1 AND $2
			ORDER BY performed_at;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Type, &w.DurationMinutes,
			&w.CaloriesBurned, &w.PerformedAt, &w.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *Repo) AddMeal(ctx context.Context, m Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO meals
				(user_id, meal_type, calories, protein, carbs, fats, logged_at, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		m.UserID, m.MealType, m.Calories, m.Protein, m.Carbs, m.Fats, m.LoggedAt, m.Notes,
	).Scan(&m.ID)
	if err != nil {
		return nil, insertErr(err)
	}

	span.SetAttributes(attribute.Int64("meal.id", m.ID))
	return &m, nil
}

func (r *Repo) MealsInRange(ctx context.Context, userID int64, from, to time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.mealsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, meal_type, calories, protein, carbs, fats, logged_at, notes
			FROM meals
			WHERE user_id = $1 AND logged_at BETWEEN $2 AND $3
			ORDER BY logged_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMeals(rows)
}

func (r *Repo) AllMealsInRange(ctx context.Context, from, to time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.allMealsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, meal_type, calories, protein, carbs, fats, logged_at, notes
			FROM meals
			WHERE logged_at BETWEEN $1 AND $2
			ORDER BY logged_at;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMeals(rows)
}

func scanMeals(rows pgx.Rows) ([]Meal, error) {
	var meals []Meal
	for rows.Next() {
		var m Meal
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.MealType, &m.Calories,
			&m.Protein, &m.Carbs, &m.Fats, &m.LoggedAt, &m.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *Repo) AddSleepLog(ctx context.Context, s SleepLog) (_ *SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addSleepLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO sleep_logs
				(user_id, hours, quality, sleep_date, notes)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		s.UserID, s.Hours, string(s.Quality), s.SleepDate, s.Notes,
	).Scan(&s.ID)
	if err != nil {
		return nil, insertErr(err)
	}

	span.SetAttributes(attribute.Int64("sleeplog.id", s.ID))
	return &s, nil
}

func (r *Repo) SleepLogsInRange(ctx context.Context, userID int64, from, to time.Time) (_ []SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.sleepLogsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, hours, quality, sleep_date, notes
			FROM sleep_logs
			WHERE user_id = $1 AND sleep_date BETWEEN $2 AND $3
			ORDER BY sleep_date;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSleepLogs(rows)
}

func (r *Repo) AllSleepLogsInRange(ctx context.Context, from, to time.Time) (_ []SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.allSleepLogsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, hours, quality, sleep_date, notes
			FROM sleep_logs
			WHERE sleep_date BETWEEN $1 AND $2
			ORDER BY sleep_date;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSleepLogs(rows)
}

func scanSleepLogs(rows pgx.Rows) ([]SleepLog, error) {
	var logs []SleepLog
	for rows.Next() {
		var s SleepLog
		var quality string
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Hours, &quality, &s.SleepDate, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.Quality = SleepQualityFromString(quality)
		logs = append(logs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *Repo) AddWaterIntake(ctx context.Context, w WaterIntake) (_ *WaterIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addWaterIntake")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO water_intakes
				(user_id, liters, logged_at, notes)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		w.UserID, w.Liters, w.LoggedAt, w.Notes,
	).Scan(&w.ID)
	if err != nil {
		return nil, insertErr(err)
	}

	span.SetAttributes(attribute.Int64("waterintake.id", w.ID))
	return &w, nil
}

func (r *Repo) WaterIntakesInRange(ctx context.Context, userID int64, from, to time.Time) (_ []WaterIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.waterIntakesInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, liters, logged_at, notes
			FROM water_intakes
			WHERE user_id = $1 AND logged_at BETWEEN $2 AND $3
			ORDER BY logged_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWaterIntakes(rows)
}

func (r *Repo) AllWaterIntakesInRange(ctx context.Context, from, to time.Time) (_ []WaterIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.allWaterIntakesInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, liters, logged_at, notes
			FROM water_intakes
			WHERE logged_at BETWEEN $1 AND $2
			ORDER BY logged_at;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWaterIntakes(rows)
}

func scanWaterIntakes(rows pgx.Rows) ([]WaterIntake, error) {
	var intakes []WaterIntake
	for rows.Next() {
		var w WaterIntake
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Liters, &w.LoggedAt, &w.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		intakes = append(intakes, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return intakes, nil
}

func (r *Repo) AddWeightLog(ctx context.Context, w WeightLog) (_ *WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addWeightLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO weight_logs
				(user_id, weight_kg, log_date)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		w.UserID, w.WeightKg, w.LogDate,
	).Scan(&w.ID)
	if err != nil {
		return nil, insertErr(err)
	}

	span.SetAttributes(attribute.Int64("weightlog.id", w.ID))
	return &w, nil
}

// WeightHistory returns all weight logs of a user, oldest first.
func (r *Repo) WeightHistory(ctx context.Context, userID int64) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.weightHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight_kg, log_date
			FROM weight_logs
			WHERE user_id = $1
			ORDER BY log_date;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWeightLogs(rows)
}

func (r *Repo) WeightLogsInRange(ctx context.Context, userID int64, from, to time.Time) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.weightLogsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight_kg, log_date
			FROM weight_logs
			WHERE user_id = $1 AND log_date BETWEEN $2 AND $3
			ORDER BY log_date;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWeightLogs(rows)
}

func scanWeightLogs(rows pgx.Rows) ([]WeightLog, error) {
	var logs []WeightLog
	for rows.Next() {
		var w WeightLog
		if err := rows.Scan(&w.ID, &w.UserID, &w.WeightKg, &w.LogDate); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *Repo) AddSteps(ctx context.Context, s Steps) (_ *Steps, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addSteps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO steps
				(user_id, count, distance_km, calories_burned, created_at, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		s.UserID, s.Count, s.DistanceKm, s.CaloriesBurned, s.CreatedAt, s.Notes,
	).Scan(&s.ID)
	if err != nil {
		return nil, insertErr(err)
	}

	span.SetAttributes(attribute.Int64("steps.id", s.ID))
	return &s, nil
}

func (r *Repo) StepsInRange(ctx context.Context, userID int64, from, to time.Time) (_ []Steps, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.stepsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, count, distance_km, calories_burned, created_at, notes
			FROM steps
			WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
			ORDER BY created_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []Steps
	for rows.Next() {
		var s Steps
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Count, &s.DistanceKm,
			&s.CaloriesBurned, &s.CreatedAt, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		steps = append(steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}
