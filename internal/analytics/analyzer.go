package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/internal/tracker"
	"github.com/wellnest-app/wellnest/internal/user"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

const (
	dateLayout = "2006-01-02"

	// fixed daily water target, in ml
	waterTargetMl = 2000

	// workout frequency goal assumes 4 workouts per week
	workoutsPerWeekTarget = 4

	// trailing range of the workout consistency report
	consistencyRangeDays = 90
)

const (
	recommendationOnTrack       = "Great progress! Keep up the good work with your diet and exercise routine."
	recommendationNeedsWork     = "You're making progress, but let's try to be more consistent with your goals."
	recommendationAtRisk        = "Let's adjust your plan. Consider reviewing your diet and exercise routine."
	recommendationTargetReached = "Congratulations! You've reached your target weight. Consider setting a new goal."
	recommendationScheduleAhead = "Try to schedule your workouts in advance to stay consistent."
)

type activitiesRepo interface {
	WorkoutsInRange(ctx context.Context, userID int64, from, to time.Time) ([]tracker.Workout, error)
	MealsInRange(ctx context.Context, userID int64, from, to time.Time) ([]tracker.Meal, error)
	SleepLogsInRange(ctx context.Context, userID int64, from, to time.Time) ([]tracker.SleepLog, error)
	WaterIntakesInRange(ctx context.Context, userID int64, from, to time.Time) ([]tracker.WaterIntake, error)
	WeightLogsInRange(ctx context.Context, userID int64, from, to time.Time) ([]tracker.WeightLog, error)
	WeightHistory(ctx context.Context, userID int64) ([]tracker.WeightLog, error)
}

type usersRepo interface {
	Get(ctx context.Context, id int64) (*user.User, error)
}

type Analyzer struct {
	activities activitiesRepo
	users      usersRepo
}

func NewAnalyzer(activities activitiesRepo, users usersRepo) *Analyzer {
	return &Analyzer{
		activities: activities,
		users:      users,
	}
}

// Summary builds the full analytics summary of a user for the inclusive
// [startDate, endDate] window. Both dates are taken at calendar-day
// granularity: the window spans startDate 00:00:00 through
// endDate 23:59:59.999999999.
func (a *Analyzer) Summary(
	ctx context.Context,
	userID int64,
	startDate, endDate time.Time,
) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	startInstant := dayStart(startDate)
	endInstant := dayEnd(endDate)
	windowDays := calendarDays(startDate, endDate)

	u, err := a.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	workouts, err := a.activities.WorkoutsInRange(ctx, userID, startInstant, endInstant)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	meals, err := a.activities.MealsInRange(ctx, userID, startInstant, endInstant)
	if err != nil {
		return nil, fmt.Errorf("get meals: %w", err)
	}
	sleepLogs, err := a.activities.SleepLogsInRange(ctx, userID, startInstant, endInstant)
	if err != nil {
		return nil, fmt.Errorf("get sleep logs: %w", err)
	}
	waterIntakes, err := a.activities.WaterIntakesInRange(ctx, userID, startInstant, endInstant)
	if err != nil {
		return nil, fmt.Errorf("get water intakes: %w", err)
	}

	goalProgress, err := a.goalProgress(ctx, u, workouts, startInstant, endInstant, windowDays)
	if err != nil {
		return nil, fmt.Errorf("goal progress: %w", err)
	}

	workoutConsistency, err := a.workoutConsistency(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("workout consistency: %w", err)
	}

	return &Summary{
		StartDate:          startDate.Format(dateLayout),
		EndDate:            endDate.Format(dateLayout),
		Workouts:           workoutAnalytics(workouts),
		Nutrition:          nutritionAnalytics(meals, windowDays),
		Sleep:              sleepAnalytics(sleepLogs),
		Water:              waterAnalytics(waterIntakes),
		GoalProgress:       goalProgress,
		HealthMetrics:      healthMetrics(u),
		WorkoutConsistency: workoutConsistency,
	}, nil
}

// calendarDays counts the inclusive calendar days between two dates. Both
// dates are normalized to UTC midnights first, so a DST transition inside
// the window cannot shorten the count.
func calendarDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func workoutAnalytics(workouts []tracker.Workout) WorkoutAnalytics {
	analytics := WorkoutAnalytics{
		WorkoutsByType: map[string]int{},
		DailyTrend:     map[string]float64{},
	}
	if len(workouts) == 0 {
		return analytics
	}

	analytics.TotalWorkouts = len(workouts)
	for _, w := range workouts {
		analytics.TotalDuration += w.DurationMinutes
		analytics.WorkoutsByType[w.Type]++
		analytics.DailyTrend[dateKey(w.PerformedAt)] += w.DurationMinutes
	}
	analytics.AvgDuration = analytics.TotalDuration / float64(analytics.TotalWorkouts)

	return analytics
}

// nutritionAnalytics divides by the calendar days of the window, not the
// days that actually have data. Sparse logging intentionally produces
// lower per-day numbers.
func nutritionAnalytics(meals []tracker.Meal, windowDays int) NutritionAnalytics {
	analytics := NutritionAnalytics{
		DailyCalorieTrend:         map[string]float64{},
		MacronutrientDistribution: map[string]float64{},
	}
	if len(meals) == 0 {
		return analytics
	}

	var totalCalories, totalProtein, totalCarbs, totalFat float64
	for _, m := range meals {
		totalCalories += m.Calories
		totalProtein += m.Protein
		totalCarbs += m.Carbs
		totalFat += m.Fats
		analytics.DailyCalorieTrend[dateKey(m.LoggedAt)] += m.Calories
	}

	days := float64(windowDays)
	analytics.AvgDailyCalories = totalCalories / days
	analytics.AvgDailyProtein = totalProtein / days
	analytics.AvgDailyCarbs = totalCarbs / days
	analytics.AvgDailyFat = totalFat / days

	analytics.MacronutrientDistribution["protein"] = totalProtein
	analytics.MacronutrientDistribution["carbs"] = totalCarbs
	analytics.MacronutrientDistribution["fat"] = totalFat

	return analytics
}

func sleepAnalytics(sleepLogs []tracker.SleepLog) SleepAnalytics {
	analytics := SleepAnalytics{
		DailyTrend:       map[string]float64{},
		SleepConsistency: "N/A",
	}
	if len(sleepLogs) == 0 {
		return analytics
	}

	qualityScores := map[tracker.SleepQuality]float64{
		tracker.SleepQualityGood: 5,
		tracker.SleepQualityFair: 3,
		tracker.SleepQualityPoor: 1,
	}

	var totalHours, totalQuality float64
	var ratedLogs int
	hours := make([]float64, 0, len(sleepLogs))
	for _, s := range sleepLogs {
		totalHours += s.Hours
		hours = append(hours, s.Hours)
		// duplicate dates: last write wins
		analytics.DailyTrend[dateKey(s.SleepDate)] = s.Hours

		// unknown quality is excluded from the average, not counted as 0
		if score, ok := qualityScores[s.Quality]; ok {
			totalQuality += score
			ratedLogs++
		}
	}

	analytics.AvgSleepDuration = totalHours / float64(len(sleepLogs))
	if ratedLogs > 0 {
		analytics.AvgSleepQuality = totalQuality / float64(ratedLogs)
	}
	_, analytics.SleepConsistency = consistency(hours)

	return analytics
}

func waterAnalytics(waterIntakes []tracker.WaterIntake) WaterIntakeAnalytics {
	analytics := WaterIntakeAnalytics{
		TargetDailyIntake: waterTargetMl,
		DailyTrend:        map[string]float64{},
	}
	if len(waterIntakes) == 0 {
		return analytics
	}

	var totalMl float64
	for _, w := range waterIntakes {
		ml := w.Liters * 1000
		totalMl += ml
		analytics.DailyTrend[dateKey(w.LoggedAt)] += ml

		// counts individual records against the target, not per-day sums
		if ml >= waterTargetMl {
			analytics.DaysMetGoal++
		}
	}
	analytics.AvgDailyIntake = totalMl / float64(len(waterIntakes))

	return analytics
}

// consistency classifies the variability of a numeric series via its
// sample standard deviation. Fewer than 2 samples yields 0 and "N/A".
func consistency(series []float64) (stdDev float64, rating string) {
	if len(series) < 2 {
		return 0, "N/A"
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))

	var sqDevSum float64
	for _, v := range series {
		sqDevSum += (v - mean) * (v - mean)
	}
	stdDev = math.Sqrt(sqDevSum / float64(len(series)-1))

	switch {
	case stdDev < 1.0:
		return stdDev, "Good"
	case stdDev < 2.0:
		return stdDev, "Fair"
	default:
		return stdDev, "Poor"
	}
}

func healthMetrics(u *user.User) HealthMetrics {
	if u.HeightCm == nil || *u.HeightCm <= 0 || u.WeightKg == nil {
		return HealthMetrics{BMI: 0, BMICategory: "N/A"}
	}

	heightM := *u.HeightCm / 100
	bmi := *u.WeightKg / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Healthy Weight"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obesity"
	}

	return HealthMetrics{BMI: bmi, BMICategory: category}
}

func (a *Analyzer) goalProgress(
	ctx context.Context,
	u *user.User,
	workouts []tracker.Workout,
	startInstant, endInstant time.Time,
	windowDays int,
) (*GoalProgress, error) {
	switch u.FitnessGoal {
	case user.GoalWeightLoss:
		return a.weightLossProgress(ctx, u, startInstant, endInstant)
	case user.GoalWorkoutFrequency:
		return workoutFrequencyProgress(workouts, windowDays), nil
	default:
		return nil, nil
	}
}

func (a *Analyzer) weightLossProgress(
	ctx context.Context,
	u *user.User,
	startInstant, endInstant time.Time,
) (*GoalProgress, error) {
	// both a target and a current weight are needed, missing either
	// means no progress to report, never an error
	if u.TargetWeightKg == nil || u.WeightKg == nil {
		return nil, nil
	}
	currentWeight := *u.WeightKg
	targetWeight := *u.TargetWeightKg

	progress := &GoalProgress{
		GoalType:            string(user.GoalWeightLoss),
		CurrentValue:        currentWeight,
		TargetValue:         targetWeight,
		Unit:                "kg",
		WeeklyProgressTrend: map[string]float64{},
	}

	// initial weight comes from the earliest log over all time,
	// falling back to the current weight
	weightHistory, err := a.activities.WeightHistory(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("get weight history: %w", err)
	}
	initialWeight := currentWeight
	if len(weightHistory) > 0 {
		initialWeight = weightHistory[0].WeightKg
	}

	weightLost := initialWeight - currentWeight
	totalToLose := initialWeight - targetWeight

	if totalToLose <= 0 {
		progress.PercentageComplete = 100
		progress.Status = "Target Reached"
		progress.Recommendation = recommendationTargetReached
	} else {
		percentage := clampPercentage(math.Round(weightLost / totalToLose * 100))
		progress.PercentageComplete = percentage

		switch {
		case percentage >= 75:
			progress.Status = "On Track"
			progress.Recommendation = recommendationOnTrack
		case percentage >= 40:
			progress.Status = "Needs Improvement"
			progress.Recommendation = recommendationNeedsWork
		default:
			progress.Status = "At Risk"
			progress.Recommendation = recommendationAtRisk
		}
	}

	// the trend only covers logs inside the requested window, unlike
	// the full-history initial weight lookup
	windowLogs, err := a.activities.WeightLogsInRange(ctx, u.ID, startInstant, endInstant)
	if err != nil {
		return nil, fmt.Errorf("get weight logs: %w", err)
	}
	for _, w := range windowLogs {
		progress.WeeklyProgressTrend[dateKey(w.LogDate)] = w.WeightKg
	}

	return progress, nil
}

func workoutFrequencyProgress(workouts []tracker.Workout, windowDays int) *GoalProgress {
	weeks := float64(windowDays) / 7.0
	targetWorkouts := workoutsPerWeekTarget * weeks

	percentage := clampPercentage(math.Round(float64(len(workouts)) / targetWorkouts * 100))

	progress := &GoalProgress{
		GoalType:            string(user.GoalWorkoutFrequency),
		CurrentValue:        float64(len(workouts)),
		TargetValue:         targetWorkouts,
		Unit:                "workouts",
		PercentageComplete:  percentage,
		Recommendation:      recommendationScheduleAhead,
		WeeklyProgressTrend: map[string]float64{},
	}

	switch {
	case percentage >= 90:
		progress.Status = "On Track"
	case percentage >= 60:
		progress.Status = "Needs Improvement"
	default:
		progress.Status = "At Risk"
	}

	for _, w := range workouts {
		progress.WeeklyProgressTrend[dateKey(w.PerformedAt)]++
	}

	return progress
}

// workoutConsistency ignores the requested window and always reports on
// the trailing 90 days ending today.
func (a *Analyzer) workoutConsistency(ctx context.Context, userID int64) (WorkoutConsistency, error) {
	today := time.Now()
	rangeStart := dayStart(today.AddDate(0, 0, -(consistencyRangeDays - 1)))
	rangeEnd := dayEnd(today)

	workouts, err := a.activities.WorkoutsInRange(ctx, userID, rangeStart, rangeEnd)
	if err != nil {
		return WorkoutConsistency{}, fmt.Errorf("get workouts: %w", err)
	}

	counts := map[string]int{}
	for _, w := range workouts {
		counts[dateKey(w.PerformedAt)]++
	}

	return WorkoutConsistency{
		StartDate:     rangeStart.Format(dateLayout),
		EndDate:       today.Format(dateLayout),
		WorkoutCounts: counts,
	}, nil
}

func clampPercentage(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
