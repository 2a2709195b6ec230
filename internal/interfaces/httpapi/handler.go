package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

type Handler struct {
	matchmakingService    *usecase.MatchmakingService
	recommendationService *usecase.RecommendationService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	matchmakingService *usecase.MatchmakingService,
	recommendationService *usecase.RecommendationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchmakingService:    matchmakingService,
		recommendationService: recommendationService,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure keeps expected client errors at warn level.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}
