package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/internal/tracker"
)

//go:generate mockgen -source=$GOFILE -destination=scorer_mocks_test.go -package=leaderboard_test

const (
	topEntriesLimit = 10

	unknownUserName = "Unknown User"
)

type activitiesRepo interface {
	AllWorkoutsInRange(ctx context.Context, from, to time.Time) ([]tracker.Workout, error)
	AllMealsInRange(ctx context.Context, from, to time.Time) ([]tracker.Meal, error)
	AllSleepLogsInRange(ctx context.Context, from, to time.Time) ([]tracker.SleepLog, error)
	AllWaterIntakesInRange(ctx context.Context, from, to time.Time) ([]tracker.WaterIntake, error)
}

type usersRepo interface {
	AllUserIDs(ctx context.Context) ([]int64, error)
	DisplayNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

type Scorer struct {
	activities activitiesRepo
	users      usersRepo
	weights    Weights

	// swapped out in tests to pin the week
	now func() time.Time
}

func NewScorer(activities activitiesRepo, users usersRepo, weights Weights) *Scorer {
	return &Scorer{
		activities: activities,
		users:      users,
		weights:    weights,
		now:        time.Now,
	}
}

// currentWeekRange returns the running ISO calendar week, Monday
// 00:00:00 through Sunday 23:59:59.999999999, derived from "now" at
// call time.
func (s *Scorer) currentWeekRange() (monday, sunday time.Time) {
	now := s.now()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7

	y, m, d := now.AddDate(0, 0, -daysSinceMonday).Date()
	monday = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	sunday = monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return monday, sunday
}

// Weekly ranks every known user by this week's activity and returns the
// top entries together with the caller's own entry at its true rank.
func (s *Scorer) Weekly(ctx context.Context, callerID int64) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "leaderboard.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", callerID))

	weekStart, weekEnd := s.currentWeekRange()

	// every known user starts at zero, active or not
	userIDs, err := s.users.AllUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user ids: %w", err)
	}
	scores := make(map[int64]float64, len(userIDs))
	for _, id := range userIDs {
		scores[id] = 0
	}

	if err := s.accumulate(ctx, scores, weekStart, weekEnd); err != nil {
		return nil, err
	}

	ranked := rank(scores)

	top := ranked
	if len(top) > topEntriesLimit {
		top = top[:topEntriesLimit]
	}

	callerEntry := findEntry(top, callerID)
	if callerEntry == nil {
		callerEntry = findEntry(ranked, callerID)
	}

	if err := s.resolveNames(ctx, top, callerEntry); err != nil {
		return nil, err
	}

	response := &Response{
		TopEntries:  make([]*Entry, 0, len(top)),
		CallerEntry: nil,
	}
	for _, e := range top {
		response.TopEntries = append(response.TopEntries, &e.Entry)
	}
	if callerEntry != nil {
		// aliases the top list entry when the caller made the cut,
		// since both point at the same ranked entry
		response.CallerEntry = &callerEntry.Entry
	}

	return response, nil
}

func (s *Scorer) accumulate(
	ctx context.Context,
	scores map[int64]float64,
	weekStart, weekEnd time.Time,
) error {
	workouts, err := s.activities.AllWorkoutsInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("get workouts: %w", err)
	}
	for _, w := range workouts {
		scores[w.UserID] += w.DurationMinutes * s.weights.WorkoutPointsPerMinute
	}

	meals, err := s.activities.AllMealsInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("get meals: %w", err)
	}
	for _, m := range meals {
		// flat points per logged meal, content does not matter
		scores[m.UserID] += s.weights.MealPoints
	}

	waterIntakes, err := s.activities.AllWaterIntakesInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("get water intakes: %w", err)
	}
	for _, w := range waterIntakes {
		scores[w.UserID] += w.Liters * s.weights.WaterPointsPerLiter
	}

	sleepLogs, err := s.activities.AllSleepLogsInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("get sleep logs: %w", err)
	}
	for _, s2 := range sleepLogs {
		scores[s2.UserID] += s2.Hours * s.weights.SleepPointsPerHour
	}

	return nil
}

type rankedEntry struct {
	Entry
	userID int64
}

// rank sorts by score descending and assigns dense 1-based ranks.
// Ties break on ascending user id to keep the order deterministic.
func rank(scores map[int64]float64) []*rankedEntry {
	ranked := make([]*rankedEntry, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, &rankedEntry{
			Entry:  Entry{Score: score},
			userID: id,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].userID < ranked[j].userID
	})

	for i, e := range ranked {
		e.Rank = i + 1
	}

	return ranked
}

func findEntry(entries []*rankedEntry, userID int64) *rankedEntry {
	for _, e := range entries {
		if e.userID == userID {
			return e
		}
	}
	return nil
}

// resolveNames looks up display names only for the entries that made it
// into the response, not for the whole user base.
func (s *Scorer) resolveNames(ctx context.Context, top []*rankedEntry, caller *rankedEntry) error {
	outputSet := make(map[int64]*rankedEntry, len(top)+1)
	for _, e := range top {
		outputSet[e.userID] = e
	}
	if caller != nil {
		outputSet[caller.userID] = caller
	}

	ids := make([]int64, 0, len(outputSet))
	for id := range outputSet {
		ids = append(ids, id)
	}

	names, err := s.users.DisplayNames(ctx, ids)
	if err != nil {
		return fmt.Errorf("get display names: %w", err)
	}

	for id, e := range outputSet {
		if name, ok := names[id]; ok && name != "" {
			e.DisplayName = name
		} else {
			e.DisplayName = unknownUserName
		}
	}

	return nil
}
