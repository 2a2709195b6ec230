package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

func (h *Handler) RecommendTimeSlots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecommendTimeSlots")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	query := r.URL.Query()
	req := timeSlotsRequest{
		TurfID: strings.TrimSpace(query.Get("turfId")),
		Date:   strings.TrimSpace(query.Get("date")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recommendationService.RecommendTimeSlots(ctx, principal.UserID, req.TurfID, date)
	if err != nil {
		h.logFailure(ctx, "recommend time slots failed", err,
			"user_id", principal.UserID,
			"turf_id", req.TurfID,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timeSlotsToDTO(result))
}

func (h *Handler) RecommendNearbyMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecommendNearbyMatches")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	query := r.URL.Query()
	var req nearbyMatchesRequest
	var err error
	if req.MaxDistance, err = queryFloat(query, "maxDistance"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Limit, err = queryInt(query, "limit"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.recommendationService.RecommendNearbyMatches(ctx, principal.UserID, req.options())
	if err != nil {
		h.logFailure(ctx, "recommend nearby matches failed", err, "user_id", principal.UserID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nearbyMatchesToDTO(matches))
}
