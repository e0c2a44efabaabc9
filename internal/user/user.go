package user

import (
	"strings"
	"time"
)

// FitnessGoal is a closed set of goals a user can track progress against.
type FitnessGoal string

const (
	GoalWeightLoss       FitnessGoal = "weight_loss"
	GoalWorkoutFrequency FitnessGoal = "workout_frequency"
	GoalNone             FitnessGoal = "none"
)

// FitnessGoalFromString normalizes free-form input to a known goal.
// Unrecognized values map to GoalNone.
func FitnessGoalFromString(s string) FitnessGoal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight_loss":
		return GoalWeightLoss
	case "workout_frequency":
		return GoalWorkoutFrequency
	default:
		return GoalNone
	}
}

type User struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	Age            int         `json:"age"`
	Gender         string      `json:"gender"`
	HeightCm       *float64    `json:"heightCm,omitempty"`
	WeightKg       *float64    `json:"weightKg,omitempty"`
	TargetWeightKg *float64    `json:"targetWeightKg,omitempty"`
	FitnessGoal    FitnessGoal `json:"fitnessGoal"`
	CreatedAt      time.Time   `json:"createdAt"`
}
