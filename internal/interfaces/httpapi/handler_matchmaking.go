package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) FindBestMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindBestMatch")
	defer span.End()

	query := r.URL.Query()
	req := findMatchRequest{TeamID: strings.TrimSpace(r.PathValue("teamID"))}
	var err error
	if req.MaxDistance, err = queryFloat(query, "maxDistance"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.MaxRatingDiff, err = queryFloat(query, "maxRatingDiff"); err != nil {
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

	matches, err := h.matchmakingService.FindBestMatch(ctx, req.TeamID, req.options())
	if err != nil {
		h.logFailure(ctx, "find best match failed", err, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamMatchesToDTO(matches))
}

func (h *Handler) FindPlayersForTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindPlayersForTeam")
	defer span.End()

	query := r.URL.Query()
	req := findPlayersRequest{
		TeamID:    strings.TrimSpace(r.PathValue("teamID")),
		Positions: queryList(query, "positions"),
	}
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
	opts, err := req.options()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.matchmakingService.FindPlayersForTeam(ctx, req.TeamID, opts)
	if err != nil {
		h.logFailure(ctx, "find players for team failed", err, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerMatchesToDTO(players))
}
