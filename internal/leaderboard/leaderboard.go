package leaderboard

// Entry is a single ranked user on the weekly leaderboard. Ranks are
// dense, 1-based and assigned over all known users before the top list
// is cut down, so a caller far down the board keeps its real rank.
type Entry struct {
	DisplayName string  `json:"displayName"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
}

type Response struct {
	TopEntries []*Entry `json:"topEntries"`
	// CallerEntry points into TopEntries when the caller made the cut.
	CallerEntry *Entry `json:"callerEntry"`
}

// Weights are the per-record point values of the weekly score. They are
// read from the config file so rebalancing does not need a new build.
type Weights struct {
	WorkoutPointsPerMinute float64
	MealPoints             float64
	WaterPointsPerLiter    float64
	SleepPointsPerHour     float64
}

func DefaultWeights() Weights {
	return Weights{
		WorkoutPointsPerMinute: 1,
		MealPoints:             10,
		WaterPointsPerLiter:    20,
		SleepPointsPerHour:     10,
	}
}
