package tracker

import (
	"strings"
	"time"
)

// SleepQuality is a self-reported rating of a night of sleep.
type SleepQuality string

const (
	SleepQualityGood    SleepQuality = "good"
	SleepQualityFair    SleepQuality = "fair"
	SleepQualityPoor    SleepQuality = "poor"
	SleepQualityUnknown SleepQuality = "unknown"
)

// SleepQualityFromString normalizes free-form input to a known quality.
func SleepQualityFromString(s string) SleepQuality {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return SleepQualityGood
	case "fair":
		return SleepQualityFair
	case "poor":
		return SleepQualityPoor
	default:
		return SleepQualityUnknown
	}
}

type Workout struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Type            string    `json:"type"`
	DurationMinutes float64   `json:"durationMinutes"`
	CaloriesBurned  float64   `json:"caloriesBurned"`
	PerformedAt     time.Time `json:"performedAt"`
	Notes           string    `json:"notes,omitempty"`
}

type Meal struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	MealType string    `json:"mealType"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	LoggedAt time.Time `json:"loggedAt"`
	Notes    string    `json:"notes,omitempty"`
}

type SleepLog struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"userId"`
	Hours     float64      `json:"hours"`
	Quality   SleepQuality `json:"quality"`
	SleepDate time.Time    `json:"sleepDate"`
	Notes     string       `json:"notes,omitempty"`
}

type WaterIntake struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Liters   float64   `json:"liters"`
	LoggedAt time.Time `json:"loggedAt"`
	Notes    string    `json:"notes,omitempty"`
}

type WeightLog struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	WeightKg float64   `json:"weightKg"`
	LogDate  time.Time `json:"logDate"`
}

type Steps struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Count          int       `json:"count"`
	DistanceKm     float64   `json:"distanceKm"`
	CaloriesBurned float64   `json:"caloriesBurned"`
	CreatedAt      time.Time `json:"createdAt"`
	Notes          string    `json:"notes,omitempty"`
}
