package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/period"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/ranking"
)

type rankingRowDTO struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	Points      float64 `json:"points"`
	RosterValue int64   `json:"rosterValue"`
	ComputedAt  string  `json:"computedAt"`
}

type periodDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	periodID := strings.TrimSpace(r.PathValue("periodID"))
	rows, err := h.rankingService.GetRanking(ctx, periodID)
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "period_id", periodID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rankingRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPeriods")
	defer span.End()

	periods, err := h.rankingService.ListPeriods(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list periods failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]periodDTO, 0, len(periods))
	for _, p := range periods {
		items = append(items, periodToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func rankingRowToDTO(v ranking.Snapshot) rankingRowDTO {
	return rankingRowDTO{
		Rank:        v.Rank,
		UserID:      v.UserID,
		Points:      v.Points,
		RosterValue: v.RosterValue,
		ComputedAt:  v.ComputedAt.UTC().Format(time.RFC3339),
	}
}

func periodToDTO(v period.Period) periodDTO {
	return periodDTO{
		ID:       v.ID,
		Name:     v.Name,
		StartsAt: v.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:   v.EndsAt.UTC().Format(time.RFC3339),
	}
}
