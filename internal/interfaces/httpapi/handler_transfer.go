package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/usecase"
)

type transferRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
}

type transferResultDTO struct {
	OK      bool            `json:"ok"`
	Reason  string          `json:"reason,omitempty"`
	Message string          `json:"message,omitempty"`
	Entry   *rosterEntryDTO `json:"entry,omitempty"`
}

type rosterEntryDTO struct {
	ID           string `json:"id"`
	PlayerID     string `json:"playerId"`
	Price        int64  `json:"price"`
	BoughtAt     string `json:"boughtAt"`
	SoldAt       string `json:"soldAt,omitempty"`
	SoldPrice    *int64 `json:"soldPrice,omitempty"`
	PostDeadline bool   `json:"postDeadline"`
}

func (h *Handler) BuyPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BuyPlayer")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req transferRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.Buy(ctx, userID, req.PlayerID, req.Price, time.Now().UTC())
	if err != nil {
		h.logger.WarnContext(ctx, "buy player failed", "user_id", userID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferResultToDTO(result))
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SellPlayer")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req transferRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.Sell(ctx, userID, req.PlayerID, req.Price, time.Now().UTC())
	if err != nil {
		h.logger.WarnContext(ctx, "sell player failed", "user_id", userID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferResultToDTO(result))
}

func (h *Handler) GetMyRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyRoster")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	now := time.Now().UTC()
	players, err := h.transferService.ActiveRoster(ctx, userID, now)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	remaining, err := h.transferService.RemainingPostDeadlineTransfers(ctx, userID, now)
	if err != nil {
		h.logger.WarnContext(ctx, "get remaining transfers failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, rosterDTO{
		Players:            items,
		RemainingTransfers: remaining,
	})
}

type rosterDTO struct {
	Players            []playerDTO `json:"players"`
	RemainingTransfers int         `json:"remainingTransfers"`
}

func transferResultToDTO(result usecase.TransferResult) transferResultDTO {
	dto := transferResultDTO{
		OK:      result.OK,
		Reason:  string(result.Reason),
		Message: result.Message,
	}
	if result.OK {
		entry := rosterEntryToDTO(result.Entry)
		dto.Entry = &entry
	}

	return dto
}

func rosterEntryToDTO(entry roster.Entry) rosterEntryDTO {
	dto := rosterEntryDTO{
		ID:           entry.ID,
		PlayerID:     entry.PlayerID,
		Price:        entry.Price,
		BoughtAt:     entry.BoughtAt.UTC().Format(time.RFC3339),
		PostDeadline: entry.PostDeadline,
	}
	if entry.SoldAt != nil {
		dto.SoldAt = entry.SoldAt.UTC().Format(time.RFC3339)
	}
	if entry.SoldPrice != nil {
		soldPrice := *entry.SoldPrice
		dto.SoldPrice = &soldPrice
	}

	return dto
}
