package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/platform/resilience"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "turf-matchmaking-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "turf-matchmaking-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_StoreConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("STORE_TIMEOUT", "")
		t.Setenv("STORE_CIRCUIT_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreBackend != StoreBackendMemory {
			t.Fatalf("expected memory backend by default, got %q", cfg.StoreBackend)
		}
		if cfg.StoreTimeout != 3*time.Second {
			t.Fatalf("unexpected default store timeout: %s", cfg.StoreTimeout)
		}
		if cfg.StoreCircuit.Enabled {
			t.Fatalf("expected store circuit disabled by default")
		}
		if !cfg.AnubisCircuit.Enabled || cfg.AnubisCircuit.FailureThreshold != 5 {
			t.Fatalf("unexpected anubis circuit defaults: %+v", cfg.AnubisCircuit)
		}
	})

	t.Run("postgres with circuit", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", " Postgres ")
		t.Setenv("STORE_TIMEOUT", "750ms")
		t.Setenv("STORE_CIRCUIT_ENABLED", "true")
		t.Setenv("STORE_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("STORE_CIRCUIT_OPEN_TIMEOUT", "30s")
		t.Setenv("STORE_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreBackend != StoreBackendPostgres {
			t.Fatalf("unexpected backend: %q", cfg.StoreBackend)
		}
		if cfg.StoreTimeout != 750*time.Millisecond {
			t.Fatalf("unexpected store timeout: %s", cfg.StoreTimeout)
		}
		want := resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 3, OpenTimeout: 30 * time.Second, HalfOpenMaxReq: 1}
		if cfg.StoreCircuit != want {
			t.Fatalf("unexpected store circuit: %+v", cfg.StoreCircuit)
		}
	})

	invalid := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown backend", key: "STORE_BACKEND", value: "mongo"},
		{name: "zero timeout", key: "STORE_TIMEOUT", value: "0s"},
		{name: "bad timeout", key: "STORE_TIMEOUT", value: "soon"},
		{name: "zero failure count", key: "STORE_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "bad half open", key: "STORE_CIRCUIT_HALF_OPEN_MAX_REQ", value: "x"},
		{name: "bad metrics flag", key: "METRICS_ENABLED", value: "maybe"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	got := parseUptraceDSNFromOTLPHeaders(`foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	if got != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", got)
	}
	if got := parseUptraceDSNFromOTLPHeaders("foo=bar"); got != "" {
		t.Fatalf("expected empty dsn, got %q", got)
	}
}
