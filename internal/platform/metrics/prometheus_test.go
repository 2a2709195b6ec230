package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var errNotFound = errors.New("not found")

func TestManager_ObserveRanking(t *testing.T) {
	t.Parallel()

	m := NewManager(
		WithRegistry(prometheus.NewRegistry()),
		WithOutcomeClassifier(func(err error) string {
			if errors.Is(err, errNotFound) {
				return "not_found"
			}
			return "error"
		}),
	)

	m.ObserveRanking("find_best_match", 12, 5, 40*time.Millisecond, nil)
	m.ObserveRanking("find_best_match", 0, 0, 2*time.Millisecond, errNotFound)
	m.ObserveRanking("find_best_match", 0, 0, 2*time.Millisecond, errors.New("boom"))

	tests := []struct {
		outcome string
		want    float64
	}{
		{outcome: "ok", want: 1},
		{outcome: "not_found", want: 1},
		{outcome: "error", want: 1},
	}
	for _, tc := range tests {
		got := testutil.ToFloat64(m.rankingRequests.WithLabelValues("find_best_match", tc.outcome))
		if got != tc.want {
			t.Fatalf("unexpected %s count: got=%v want=%v", tc.outcome, got, tc.want)
		}
	}

	if n := testutil.CollectAndCount(m.rankingCandidates); n != 1 {
		t.Fatalf("candidate sizes should only be observed on success, got %d series", n)
	}
}

func TestManager_HandlerServesMetrics(t *testing.T) {
	t.Parallel()

	m := NewManager(WithNamespace("test"), WithRegistry(prometheus.NewRegistry()))
	m.ObserveHTTPRequest("GET /v1/matchmaking/teams/{teamID}", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	m.SetCircuitOpen("postgres", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`test_matchmaking_http_requests_total{method="GET",route="GET /v1/matchmaking/teams/{teamID}",status_code="200"} 1`,
		`test_matchmaking_store_circuit_open{store="postgres"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected metrics output to contain %q\n%s", want, body)
		}
	}
}

func TestManager_NilIsNoop(t *testing.T) {
	var m *Manager
	m.ObserveRanking("x", 1, 1, time.Millisecond, nil)
	m.ObserveHTTPRequest("x", http.MethodGet, http.StatusOK, time.Millisecond)
	m.SetCircuitOpen("x", true)
}
