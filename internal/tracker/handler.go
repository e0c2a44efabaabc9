package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/wellnest-app/wellnest/internal/auth"
	"github.com/wellnest-app/wellnest/internal/telemetry/metrics"
	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/internal/user"
	"github.com/wellnest-app/wellnest/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=tracker_test

const defaultListRangeDays = 7

type trackerRepo interface {
	AddWorkout(ctx context.Context, w Workout) (*Workout, error)
	WorkoutsInRange(ctx context.Context, userID int64, from, to time.Time) ([]Workout, error)
	AddMeal(ctx context.Context, m Meal) (*Meal, error)
	MealsInRange(ctx context.Context, userID int64, from, to time.Time) ([]Meal, error)
	AddSleepLog(ctx context.Context, s SleepLog) (*SleepLog, error)
	SleepLogsInRange(ctx context.Context, userID int64, from, to time.Time) ([]SleepLog, error)
	AddWaterIntake(ctx context.Context, w WaterIntake) (*WaterIntake, error)
	WaterIntakesInRange(ctx context.Context, userID int64, from, to time.Time) ([]WaterIntake, error)
	AddWeightLog(ctx context.Context, w WeightLog) (*WeightLog, error)
	AddSteps(ctx context.Context, s Steps) (*Steps, error)
	StepsInRange(ctx context.Context, userID int64, from, to time.Time) ([]Steps, error)
}

type usersRepo interface {
	UpdateWeight(ctx context.Context, id int64, weightKg float64) error
}

type Handler struct {
	repo           trackerRepo
	usersRepo      usersRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo trackerRepo, usersRepo usersRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		usersRepo:      usersRepo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("workout-add")
	router.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET").Name("workout-list")
	router.HandleFunc("/meals", handler.HandleAddMeal).Methods("POST", "OPTIONS").Name("meal-add")
	router.HandleFunc("/meals", handler.HandleListMeals).Methods("GET").Name("meal-list")
	router.HandleFunc("/water", handler.HandleAddWaterIntake).Methods("POST", "OPTIONS").Name("water-add")
	router.HandleFunc("/water", handler.HandleListWaterIntakes).Methods("GET").Name("water-list")
	router.HandleFunc("/sleep", handler.HandleAddSleepLog).Methods("POST", "OPTIONS").Name("sleep-add")
	router.HandleFunc("/sleep", handler.HandleListSleepLogs).Methods("GET").Name("sleep-list")
	router.HandleFunc("/steps", handler.HandleAddSteps).Methods("POST", "OPTIONS").Name("steps-add")
	router.HandleFunc("/steps", handler.HandleListSteps).Methods("GET").Name("steps-list")
	router.HandleFunc("/weight", handler.HandleAddWeightLog).Methods("POST", "OPTIONS").Name("weight-add")
}

// listRange reads the from/to date params, falling back to the last 7 days.
func listRange(r *http.Request) (from, to time.Time, err error) {
	now := time.Now()
	from = now.AddDate(0, 0, -defaultListRangeDays)
	to = now

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		fromDate, err := time.ParseInLocation("2006-01-02", fromParam, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("parse from date: %w", err)
		}
		from = fromDate
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		toDate, err := time.ParseInLocation("2006-01-02", toParam, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("parse to date: %w", err)
		}
		to = toDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return from, to, nil
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addWorkout")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Type == "" {
		http.Error(w, "error, workout type empty", http.StatusBadRequest)
		return
	}

	workout.UserID = userID
	if workout.PerformedAt.IsZero() {
		workout.PerformedAt = time.Now()
	}

	addedWorkout, err := handler.repo.AddWorkout(ctx, workout)
	if err != nil {
		writeAddError(w, "workout", userID, err)
		return
	}

	handler.metricsManager.CounterActivityRecords.WithLabelValues("workout").Inc()
	writeAddedRecord(w, addedWorkout)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listWorkouts")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := listRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.WorkoutsInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list workouts for user %d: %s", userID, err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	writeRecords(w, workouts)
}

func (handler *Handler) HandleAddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addMeal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var meal Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		log.Tracef("new meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	meal.UserID = userID
	if meal.LoggedAt.IsZero() {
		meal.LoggedAt = time.Now()
	}

	addedMeal, err := handler.repo.AddMeal(ctx, meal)
	if err != nil {
		writeAddError(w, "meal", userID, err)
		return
	}

	handler.metricsManager.CounterActivityRecords.WithLabelValues("meal").Inc()
	writeAddedRecord(w, addedMeal)
}

func (handler *Handler) HandleListMeals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listMeals")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := listRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meals, err := handler.repo.MealsInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list meals for user %d: %s", userID, err)
		http.Error(w, "error, failed to list meals", http.StatusInternalServerError)
		return
	}
	if meals == nil {
		meals = []Meal{}
	}

	writeRecords(w, meals)
}

func (handler *Handler) HandleAddSleepLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addSleepLog")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type sleepLogRequest struct {
		Hours     float64 `json:"hours"`
		Quality   string  `json:"quality"`
		SleepDate string  `json:"sleepDate"`
		Notes     string  `json:"notes"`
	}
	var sleepReq sleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&sleepReq); err != nil {
		log.Tracef("new sleep log, unmarshal json params: %s", err)
		http.Error(w, "add sleep log failed", http.StatusBadRequest)
		return
	}

	sleepDate := localDate(time.Now())
	if sleepReq.SleepDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", sleepReq.SleepDate, time.Local)
		if err != nil {
			http.Error(w, "error, invalid sleep date", http.StatusBadRequest)
			return
		}
		sleepDate = parsed
	}

	addedSleepLog, err := handler.repo.AddSleepLog(ctx, SleepLog{
		UserID:    userID,
		Hours:     sleepReq.Hours,
		Quality:   SleepQualityFromString(sleepReq.Quality),
		SleepDate: sleepDate,
		Notes:     sleepReq.Notes,
	})
	if err != nil {
		writeAddError(w, "sleep log", userID, err)
		return
	}

	handler.metricsManager.CounterActivityRecords.WithLabelValues("sleep").Inc()
	writeAddedRecord(w, addedSleepLog)
}

func (handler *Handler) HandleListSleepLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listSleepLogs")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := listRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sleepLogs, err := handler.repo.SleepLogsInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list sleep logs for user %d: %s", userID, err)
		http.Error(w, "error, failed to list sleep logs", http.StatusInternalServerError)
		return
	}
	if sleepLogs == nil {
		sleepLogs = []SleepLog{}
	}

	writeRecords(w, sleepLogs)
}

func (handler *Handler) HandleAddWaterIntake(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addWaterIntake")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var intake WaterIntake
	if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
		log.Tracef("new water intake, unmarshal json params: %s", err)
		http.Error(w, "add water intake failed", http.StatusBadRequest)
		return
	}

	if intake.Liters <= 0 {
		http.Error(w, "error, liters must be positive", http.StatusBadRequest)
		return
	}

	intake.UserID = userID
	if intake.LoggedAt.IsZero() {
		intake.LoggedAt = time.Now()
	}

	addedIntake, err := handler.repo.AddWaterIntake(ctx, intake)
	if err != nil {
		writeAddError(w, "water intake", userID, err)
		return
	}

	handler.metricsManager.CounterActivityRecords.WithLabelValues("water").Inc()
	writeAddedRecord(w, addedIntake)
}

func (handler *Handler) HandleListWaterIntakes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listWaterIntakes")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := listRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	intakes, err := handler.repo.WaterIntakesInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list water intakes for user %d: %s", userID, err)
		http.Error(w, "error, failed to list water intakes", http.StatusInternalServerError)
		return
	}
	if intakes == nil {
		intakes = []WaterIntake{}
	}

	writeRecords(w, intakes)
}

func (handler *Handler) HandleAddSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addSteps")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var steps Steps
	if err := json.NewDecoder(r.Body).Decode(&steps); err != nil {
		log.Tracef("new steps, unmarshal json params: %s", err)
		http.Error(w, "add steps failed", http.StatusBadRequest)
		return
	}

	if steps.Count <= 0 {
		http.Error(w, "error, steps count must be positive", http.StatusBadRequest)
		return
	}

	steps.UserID = userID
	if steps.CreatedAt.IsZero() {
		steps.CreatedAt = time.Now()
	}

	addedSteps, err := handler.repo.AddSteps(ctx, steps)
	if err != nil {
		writeAddError(w, "steps", userID, err)
		return
	}

	handler.metricsManager.CounterActivityRecords.WithLabelValues("steps").Inc()
	writeAddedRecord(w, addedSteps)
}

func (handler *Handler) HandleListSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listSteps")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := listRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	steps, err := handler.repo.StepsInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list steps for user %d: %s", userID, err)
		http.Error(w, "error, failed to list steps", http.StatusInternalServerError)
		return
	}
	if steps == nil {
		steps = []Steps{}
	}

	writeRecords(w, steps)
}

func (handler *Handler) HandleAddWeightLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addWeightLog")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type weightLogRequest struct {
		WeightKg float64 `json:"weightKg"`
		LogDate  string  `json:"logDate"`
	}
	var weightReq weightLogRequest
	if err := json.NewDecoder(r.Body).Decode(&weightReq); err != nil {
		log.Tracef("new weight log, unmarshal json params: %s", err)
		http.Error(w, "add weight log failed", http.StatusBadRequest)
		return
	}

	if weightReq.WeightKg <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	logDate := localDate(time.Now())
	if weightReq.LogDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", weightReq.LogDate, time.Local)
		if err != nil {
			http.Error(w, "error, invalid log date", http.StatusBadRequest)
			return
		}
		logDate = parsed
	}

	addedWeightLog, err := handler.repo.AddWeightLog(ctx, WeightLog{
		UserID:   userID,
		WeightKg: weightReq.WeightKg,
		LogDate:  logDate,
	})
	if err != nil {
		writeAddError(w, "weight log", userID, err)
		return
	}

	// a new weight log also becomes the user's current weight
	if err := handler.usersRepo.UpdateWeight(ctx, userID, weightReq.WeightKg); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update current weight for user %d: %s", userID, err)
		http.Error(w, "error, failed to update current weight", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterActivityRecords.WithLabelValues("weight").Inc()
	writeAddedRecord(w, addedWeightLog)
}

// localDate keeps the calendar date of t in its own location. Truncating to
// 24h would round to a UTC midnight, which just after a local midnight still
// falls on the previous day.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func writeAddError(w http.ResponseWriter, activity string, userID int64, err error) {
	if errors.Is(err, ErrUserGone) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	log.Errorf("failed to add %s for user %d: %s", activity, userID, err)
	http.Error(w, "error, failed to add "+activity, http.StatusInternalServerError)
}

func writeAddedRecord(w http.ResponseWriter, record any) {
	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("marshal added record: %s", err)
		http.Error(w, "marshal record error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

func writeRecords(w http.ResponseWriter, records any) {
	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("marshal records: %s", err)
		http.Error(w, "marshal records error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordsJson)
}
