package httpapi

import (
	"net/http"
	"strings"
	"time"
)

func (h *Handler) RunScoreGoalsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoreGoalsJob")
	defer span.End()

	result, err := h.scoringService.ProcessUnscoredGoals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "score goals job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{
		"goalsProcessed": result.Processed,
		"recordsWritten": result.Records,
	})
}

// RunRecomputeRankingsJob rebuilds one period's leaderboard when period_id
// is given, or every period's otherwise.
func (h *Handler) RunRecomputeRankingsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeRankingsJob")
	defer span.End()

	now := time.Now().UTC()
	periodID := strings.TrimSpace(r.URL.Query().Get("period_id"))
	if periodID != "" {
		rows, err := h.rankingService.RecomputeRanking(ctx, periodID, now)
		if err != nil {
			h.logger.ErrorContext(ctx, "recompute ranking job failed", "period_id", periodID, "error", err)
			writeError(ctx, w, err)
			return
		}

		writeSuccess(ctx, w, http.StatusOK, map[string]any{
			"periodId": periodID,
			"rows":     len(rows),
		})
		return
	}

	if err := h.rankingService.RecomputeAll(ctx, now); err != nil {
		h.logger.ErrorContext(ctx, "recompute all rankings job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
