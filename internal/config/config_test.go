package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr %q", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 30*time.Minute || cfg.SessionSweepInterval != time.Minute {
		t.Fatalf("unexpected session timings: ttl=%s sweep=%s", cfg.SessionTTL, cfg.SessionSweepInterval)
	}
	if cfg.SessionCookieName != "tl_session" || cfg.SessionCookieSecure {
		t.Fatalf("unexpected cookie config: %q secure=%v", cfg.SessionCookieName, cfg.SessionCookieSecure)
	}
	if cfg.CopyConfirmationHold != 2*time.Second {
		t.Fatalf("unexpected copy hold %s", cfg.CopyConfirmationHold)
	}
	if cfg.StubLatencyScale != 1 {
		t.Fatalf("expected real-time stub latency by default, got %v", cfg.StubLatencyScale)
	}
	if cfg.WorkerPoolSize != 64 {
		t.Fatalf("unexpected worker pool size %d", cfg.WorkerPoolSize)
	}
	if cfg.ReferralBaseURL != "https://pump69.com" {
		t.Fatalf("unexpected referral base url %q", cfg.ReferralBaseURL)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected league cache off by default")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger and secures cookie by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")
		t.Setenv("SESSION_COOKIE_SECURE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
		if !cfg.SessionCookieSecure {
			t.Fatalf("expected secure session cookie in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
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

func TestLoad_CopyHoldBelowMinimumRejected(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("COPY_CONFIRMATION_HOLD", "1500ms")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for copy hold under 2s")
	}
}

func TestLoad_StubLatencyScale(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("zero disables delays", func(t *testing.T) {
		t.Setenv("STUB_LATENCY_SCALE", "0")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StubLatencyScale != 0 {
			t.Fatalf("unexpected scale %v", cfg.StubLatencyScale)
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		t.Setenv("STUB_LATENCY_SCALE", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative scale")
		}
	})
}

func TestLoad_DurationsValidated(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	for _, key := range []string{"APP_READ_TIMEOUT", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "PYROSCOPE_UPLOAD_RATE"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "0s")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for non-positive %s", key)
			}

			t.Setenv(key, "soon")
			if _, err := Load(); err == nil {
				t.Fatalf("expected parse error for %s", key)
			}
		})
	}
}

func TestLoad_WorkerPoolSizeValidated(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WORKER_POOL_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty worker pool")
	}
}

func TestLoad_ReferralBaseURLValidated(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("REFERRAL_BASE_URL", "pump69.com")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for base url without scheme")
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 45*time.Second {
		t.Fatalf("unexpected cache config: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
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
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "trading-league-staging")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "trading-league-staging" {
		t.Fatalf("unexpected pyroscope app name %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

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

	t.Run("separators only rejected", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty origin list")
		}
	})
}
