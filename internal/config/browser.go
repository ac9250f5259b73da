package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// BrowserConfig holds browser session configuration for the suite.
type BrowserConfig struct {
	// Engines lists the browser engine kinds to run each scenario against.
	Engines []string
	// Headless controls whether browsers run without a visible window.
	Headless bool
	// SlowMo delays every driver operation, for debugging.
	SlowMo time.Duration
	// ImplicitWait is the default per-query fallback wait applied to the page.
	ImplicitWait time.Duration
	// StepTimeout bounds mandatory explicit waits.
	StepTimeout time.Duration
	// GateTimeout bounds probes for optional, environment-dependent elements.
	GateTimeout time.Duration
	// WindowWidth and WindowHeight set the session viewport.
	WindowWidth  int
	WindowHeight int
	// Screenshots enables a screenshot on session release after a failure.
	Screenshots bool
	// ScreenshotDir is where failure screenshots are written.
	ScreenshotDir string
}

// LoadBrowserConfig loads browser configuration from environment variables.
func LoadBrowserConfig() BrowserConfig {
	engines := []string{"chromium"}
	if v := os.Getenv("SHOPTEST_ENGINES"); v != "" {
		engines = nil
		for _, e := range strings.Split(v, ",") {
			if e = strings.TrimSpace(e); e != "" {
				engines = append(engines, e)
			}
		}
	}

	cfg := BrowserConfig{
		Engines:       engines,
		Headless:      os.Getenv("HEADLESS") != "false",
		SlowMo:        envDuration("SHOPTEST_SLOWMO_MS", 0),
		ImplicitWait:  envDuration("SHOPTEST_IMPLICIT_WAIT_MS", 10_000),
		StepTimeout:   envDuration("SHOPTEST_STEP_TIMEOUT_MS", 10_000),
		GateTimeout:   envDuration("SHOPTEST_GATE_TIMEOUT_MS", 5_000),
		WindowWidth:   envInt("SHOPTEST_WINDOW_WIDTH", 1920),
		WindowHeight:  envInt("SHOPTEST_WINDOW_HEIGHT", 1080),
		Screenshots:   os.Getenv("SHOPTEST_SCREENSHOTS") == "true",
		ScreenshotDir: os.Getenv("SHOPTEST_SCREENSHOT_DIR"),
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "test-results/screenshots"
	}
	return cfg
}

func envDuration(key string, defMillis int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defMillis) * time.Millisecond
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
