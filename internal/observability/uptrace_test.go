package observability

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/config"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "turf-matchmaking-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true}, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestProfilersDisabled(t *testing.T) {
	logger := logging.NewNop()

	srv, err := StartPprofServer(config.Config{}, logger)
	if err != nil || srv != nil {
		t.Fatalf("expected no pprof server when disabled, got srv=%v err=%v", srv, err)
	}
	if err := StopPprofServer(nil, logger, 0); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}

	stop, err := InitPyroscope(config.Config{}, logger)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_ServesIndex(t *testing.T) {
	logger := logging.NewNop()
	srv, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logger)
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	defer func() { _ = StopPprofServer(srv, logger, time.Second) }()

	resp, err := http.Get("http://" + srv.Addr + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from pprof index, got %d", resp.StatusCode)
	}
}

func TestStartPprofServer_AddrInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	if _, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: ln.Addr().String()}, nil); err == nil {
		t.Fatalf("expected error when pprof address is taken")
	}
}
