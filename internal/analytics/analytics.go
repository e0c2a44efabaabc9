package analytics

// Summary is the aggregate analytics result for one user and one date window.
// Every sub-object is always present and zero-valued when its source data is
// empty, except GoalProgress which is genuinely optional.
type Summary struct {
	StartDate          string               `json:"startDate"`
	EndDate            string               `json:"endDate"`
	Workouts           WorkoutAnalytics     `json:"workoutAnalytics"`
	Nutrition          NutritionAnalytics   `json:"nutritionAnalytics"`
	Sleep              SleepAnalytics       `json:"sleepAnalytics"`
	Water              WaterIntakeAnalytics `json:"waterIntakeAnalytics"`
	GoalProgress       *GoalProgress        `json:"goalProgress,omitempty"`
	HealthMetrics      HealthMetrics        `json:"healthMetrics"`
	WorkoutConsistency WorkoutConsistency   `json:"workoutConsistency"`
}

type WorkoutAnalytics struct {
	TotalWorkouts int `json:"totalWorkouts"`
	// durations in minutes
	TotalDuration  float64            `json:"totalDuration"`
	AvgDuration    float64            `json:"avgDuration"`
	WorkoutsByType map[string]int     `json:"workoutsByType"`
	DailyTrend     map[string]float64 `json:"dailyTrend"`
}

type NutritionAnalytics struct {
	AvgDailyCalories  float64            `json:"avgDailyCalories"`
	AvgDailyProtein   float64            `json:"avgDailyProtein"`
	AvgDailyCarbs     float64            `json:"avgDailyCarbs"`
	AvgDailyFat       float64            `json:"avgDailyFat"`
	DailyCalorieTrend map[string]float64 `json:"dailyCalorieTrend"`
	// raw totals {protein, carbs, fat}, not normalized to 100%
	MacronutrientDistribution map[string]float64 `json:"macronutrientDistribution"`
}

type SleepAnalytics struct {
	// in hours
	AvgSleepDuration float64 `json:"avgSleepDuration"`
	// 1-5 scale
	AvgSleepQuality  float64            `json:"avgSleepQuality"`
	DailyTrend       map[string]float64 `json:"dailyTrend"`
	SleepConsistency string             `json:"sleepConsistency"`
}

type WaterIntakeAnalytics struct {
	// in ml
	AvgDailyIntake    float64            `json:"avgDailyIntake"`
	TargetDailyIntake float64            `json:"targetDailyIntake"`
	DailyTrend        map[string]float64 `json:"dailyTrend"`
	DaysMetGoal       int                `json:"daysMetGoal"`
}

type GoalProgress struct {
	GoalType            string             `json:"goalType"`
	CurrentValue        float64            `json:"currentValue"`
	TargetValue         float64            `json:"targetValue"`
	Unit                string             `json:"unit"`
	PercentageComplete  int                `json:"percentageComplete"`
	Status              string             `json:"status"`
	Recommendation      string             `json:"recommendation"`
	WeeklyProgressTrend map[string]float64 `json:"weeklyProgressTrend"`
}

type HealthMetrics struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmiCategory"`
}

// WorkoutConsistency maps dates to workout counts over a trailing 90 day
// range. Dates with zero workouts are absent from the map.
type WorkoutConsistency struct {
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	WorkoutCounts map[string]int `json:"workoutCounts"`
}
