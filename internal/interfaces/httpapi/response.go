package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "turf-matchmaking"

	internalErrorMessage         = "internal server error"
	dependencyUnavailableMessage = "a required dependency is unavailable, retry later"

	// matches the anubis and store breakers' default open timeout
	retryAfterSeconds = 15
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalMapping = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

// sentinelMappings is checked in order; the first errors.Is match wins.
var sentinelMappings = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}},
	{usecase.ErrUnauthorized, mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"}},
	{usecase.ErrDependencyUnavailable, mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(payload); err != nil {
		span.RecordError(err)
	}
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func errorEnvelope(mapped mappedError, msg string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: msg,
			Status:  mapped.Status,
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: msg}},
		},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	switch mapped.HTTPStatus {
	case http.StatusInternalServerError:
		writeInternalError(ctx, w)
	case http.StatusServiceUnavailable:
		// store and account errors carry hostnames and SQL; keep them in logs
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, dependencyUnavailableMessage))
	default:
		writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, err.Error()))
	}
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope(internalMapping, internalErrorMessage))
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, m := range sentinelMappings {
		if errors.Is(err, m.target) {
			return m.mapped
		}
	}
	return internalMapping
}
