package config

import (
	"testing"
	"time"
)

func TestLoadBrowserConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SHOPTEST_ENGINES", "HEADLESS", "SHOPTEST_SLOWMO_MS",
		"SHOPTEST_IMPLICIT_WAIT_MS", "SHOPTEST_STEP_TIMEOUT_MS",
		"SHOPTEST_GATE_TIMEOUT_MS", "SHOPTEST_WINDOW_WIDTH",
		"SHOPTEST_WINDOW_HEIGHT", "SHOPTEST_SCREENSHOTS", "SHOPTEST_SCREENSHOT_DIR",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadBrowserConfig()

	if len(cfg.Engines) != 1 || cfg.Engines[0] != "chromium" {
		t.Errorf("Engines = %v, want [chromium]", cfg.Engines)
	}
	if !cfg.Headless {
		t.Error("Headless should default to true")
	}
	if cfg.StepTimeout != 10*time.Second {
		t.Errorf("StepTimeout = %v, want 10s", cfg.StepTimeout)
	}
	if cfg.GateTimeout != 5*time.Second {
		t.Errorf("GateTimeout = %v, want 5s", cfg.GateTimeout)
	}
	if cfg.WindowWidth != 1920 || cfg.WindowHeight != 1080 {
		t.Errorf("window = %dx%d, want 1920x1080", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Screenshots {
		t.Error("Screenshots should default to false")
	}
	if cfg.ScreenshotDir != "test-results/screenshots" {
		t.Errorf("ScreenshotDir = %q", cfg.ScreenshotDir)
	}
}

func TestLoadBrowserConfigOverrides(t *testing.T) {
	t.Setenv("SHOPTEST_ENGINES", "chromium, firefox ,webkit")
	t.Setenv("HEADLESS", "false")
	t.Setenv("SHOPTEST_STEP_TIMEOUT_MS", "2500")
	t.Setenv("SHOPTEST_GATE_TIMEOUT_MS", "750")
	t.Setenv("SHOPTEST_SCREENSHOTS", "true")

	cfg := LoadBrowserConfig()

	want := []string{"chromium", "firefox", "webkit"}
	if len(cfg.Engines) != len(want) {
		t.Fatalf("Engines = %v, want %v", cfg.Engines, want)
	}
	for i := range want {
		if cfg.Engines[i] != want[i] {
			t.Errorf("Engines[%d] = %q, want %q", i, cfg.Engines[i], want[i])
		}
	}
	if cfg.Headless {
		t.Error("Headless should be false")
	}
	if cfg.StepTimeout != 2500*time.Millisecond {
		t.Errorf("StepTimeout = %v", cfg.StepTimeout)
	}
	if cfg.GateTimeout != 750*time.Millisecond {
		t.Errorf("GateTimeout = %v", cfg.GateTimeout)
	}
	if !cfg.Screenshots {
		t.Error("Screenshots should be true")
	}
}

func TestLoadBrowserConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("SHOPTEST_STEP_TIMEOUT_MS", "not-a-number")
	t.Setenv("SHOPTEST_WINDOW_WIDTH", "-5")

	cfg := LoadBrowserConfig()
	if cfg.StepTimeout != 10*time.Second {
		t.Errorf("bad duration should fall back to default, got %v", cfg.StepTimeout)
	}
	if cfg.WindowWidth != 1920 {
		t.Errorf("bad width should fall back to default, got %d", cfg.WindowWidth)
	}
}

func TestLoadShopConfig(t *testing.T) {
	t.Setenv("SHOPTEST_BASE_URL", "")
	t.Setenv("SHOPTEST_EMAIL", "")
	t.Setenv("SHOPTEST_PASSWORD", "")

	cfg := LoadShopConfig()
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty (stub mode)", cfg.BaseURL)
	}
	if cfg.Email != "jim_finch@gmail.com" || cfg.Password != "qwerty" {
		t.Errorf("fixture credentials = %q/%q", cfg.Email, cfg.Password)
	}

	t.Setenv("SHOPTEST_BASE_URL", "https://shop.example.com")
	t.Setenv("SHOPTEST_EMAIL", "someone@example.com")
	cfg = LoadShopConfig()
	if cfg.BaseURL != "https://shop.example.com" || cfg.Email != "someone@example.com" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
