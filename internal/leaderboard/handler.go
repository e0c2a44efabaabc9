package leaderboard

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/wellnest-app/wellnest/internal/auth"
	"github.com/wellnest-app/wellnest/internal/telemetry/metrics"
	"github.com/wellnest-app/wellnest/internal/telemetry/tracing"
	"github.com/wellnest-app/wellnest/pkg"
)

type Handler struct {
	scorer         *Scorer
	metricsManager *metrics.Manager
}

func NewHandler(scorer *Scorer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		scorer:         scorer,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/weekly", handler.HandleWeekly).Methods("GET", "OPTIONS").Name("leaderboard-weekly")
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard.weekly")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	response, err := handler.scorer.Weekly(ctx, userID)
	if err != nil {
		log.Errorf("failed to build weekly leaderboard for user %d: %s", userID, err)
		http.Error(w, "error, failed to build leaderboard", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLeaderboardRequests.Inc()

	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("marshal weekly leaderboard: %s", err)
		http.Error(w, "marshal leaderboard error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, responseJson)
}
