package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/wellnest-app/wellnest/internal/auth"
	"github.com/wellnest-app/wellnest/internal/telemetry/metrics"
	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/pkg"
)

// summaries default to the trailing week when no dates are supplied
const defaultWindowDays = 7

type Handler struct {
	analyzer       *Analyzer
	cache          *SummaryCache
	metricsManager *metrics.Manager
}

func NewHandler(analyzer *Analyzer, cache *SummaryCache, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer:       analyzer,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("analytics-summary")
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.summary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	startDate := now.AddDate(0, 0, -(defaultWindowDays - 1))
	endDate := now

	if startParam := r.URL.Query().Get("start"); startParam != "" {
		parsed, err := time.ParseInLocation(dateLayout, startParam, time.Local)
		if err != nil {
			http.Error(w, "error, invalid start date", http.StatusBadRequest)
			return
		}
		startDate = parsed
	}
	if endParam := r.URL.Query().Get("end"); endParam != "" {
		parsed, err := time.ParseInLocation(dateLayout, endParam, time.Local)
		if err != nil {
			http.Error(w, "error, invalid end date", http.StatusBadRequest)
			return
		}
		endDate = parsed
	}

	if endDate.Before(startDate) {
		http.Error(w, "error, end date before start date", http.StatusBadRequest)
		return
	}

	if handler.cache != nil {
		if cached := handler.cache.Get(userID, startDate, endDate); cached != nil {
			writeSummary(w, cached)
			return
		}
	}

	buildStart := time.Now()
	summary, err := handler.analyzer.Summary(ctx, userID, startDate, endDate)
	if err != nil {
		log.Errorf("failed to build analytics summary for user %d: %s", userID, err)
		http.Error(w, "error, failed to build summary", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterAnalyticsSummaries.Inc()
	handler.metricsManager.HistSummaryBuildDuration.Observe(time.Since(buildStart).Seconds())

	if handler.cache != nil {
		handler.cache.Set(userID, startDate, endDate, summary)
	}

	writeSummary(w, summary)
}

func writeSummary(w http.ResponseWriter, summary *Summary) {
	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal analytics summary: %s", err)
		http.Error(w, "marshal summary error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}
