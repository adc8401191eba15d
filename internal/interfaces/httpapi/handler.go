package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
	"github.com/Timsl1401/kosc-spitsenspel/internal/usecase"
)

type Handler struct {
	transferService *usecase.TransferService
	scoringService  *usecase.GoalScoringService
	rankingService  *usecase.RankingService
	teamService     *usecase.TeamService
	playerService   *usecase.PlayerService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	transferService *usecase.TransferService,
	scoringService *usecase.GoalScoringService,
	rankingService *usecase.RankingService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		transferService: transferService,
		scoringService:  scoringService,
		rankingService:  rankingService,
		teamService:     teamService,
		playerService:   playerService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
