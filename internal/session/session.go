// Package session manages one browser session per test execution: engine
// selection, launch, baseline configuration and guaranteed teardown.
package session

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/ParZival6677/shoptest/internal/config"
)

// Engine identifies a supported browser engine kind.
type Engine int

// Supported engine kinds.
const (
	Chromium Engine = iota
	Firefox
	WebKit
)

// String returns the engine name as used in configuration.
func (e Engine) String() string {
	switch e {
	case Chromium:
		return "chromium"
	case Firefox:
		return "firefox"
	case WebKit:
		return "webkit"
	default:
		return fmt.Sprintf("engine(%d)", int(e))
	}
}

// ParseEngine converts an engine name from configuration into an Engine.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case "chromium", "chrome":
		return Chromium, nil
	case "firefox":
		return Firefox, nil
	case "webkit", "edge", "safari":
		return WebKit, nil
	default:
		return 0, fmt.Errorf("unsupported browser engine %q", name)
	}
}

// StartError reports that a browser session could not be launched.
type StartError struct {
	Engine Engine
	Err    error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("could not start %s session: %v", e.Engine, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// Session is one browser-driving connection scoped to a single test
// execution. It owns its browser process, context and cookie jar; no state
// is shared between sessions.
type Session struct {
	ID     string
	Engine Engine
	Page   playwright.Page

	browser playwright.Browser
	context playwright.BrowserContext
	cfg     config.BrowserConfig
	log     *log.Logger
	failed  bool
}

// Log returns the session-scoped logger.
func (s *Session) Log() *log.Logger { return s.log }

// StepTimeout returns the bound for mandatory explicit waits.
func (s *Session) StepTimeout() time.Duration { return s.cfg.StepTimeout }

// GateTimeout returns the bound for optional-element probes.
func (s *Session) GateTimeout() time.Duration { return s.cfg.GateTimeout }

// MarkFailed records a scenario failure so Release can capture a screenshot.
func (s *Session) MarkFailed() { s.failed = true }

// ScopeLog prefixes the session logger, typically with the scenario case
// ID, so every line the session emits is attributable to its scenario.
func (s *Session) ScopeLog(prefix string) { s.log = s.log.WithPrefix(prefix) }

// Provider creates and destroys browser sessions. It owns the single
// Playwright driver process shared by all sessions it hands out.
type Provider struct {
	pw  *playwright.Playwright
	cfg config.BrowserConfig
	log *log.Logger
}

// NewProvider starts the Playwright driver. If the driver is not installed
// it attempts one install-and-retry before giving up.
func NewProvider(cfg config.BrowserConfig, logger *log.Logger) (*Provider, error) {
	pw, err := playwright.Run()
	if err != nil {
		if err = playwright.Install(); err != nil {
			return nil, fmt.Errorf("could not install playwright driver: %w", err)
		}
		pw, err = playwright.Run()
		if err != nil {
			return nil, fmt.Errorf("could not start playwright after install retry: %w", err)
		}
	}
	return &Provider{pw: pw, cfg: cfg, log: logger}, nil
}

// Acquire launches a browser of the given engine kind and returns a
// configured session. Failures surface as *StartError.
func (p *Provider) Acquire(engine Engine) (*Session, error) {
	bt := p.browserType(engine)
	browser, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(p.cfg.Headless),
		SlowMo:   playwright.Float(float64(p.cfg.SlowMo.Milliseconds())),
	})
	if err != nil {
		return nil, &StartError{Engine: engine, Err: err}
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  p.cfg.WindowWidth,
			Height: p.cfg.WindowHeight,
		},
	})
	if err != nil {
		browser.Close()
		return nil, &StartError{Engine: engine, Err: fmt.Errorf("could not create context: %w", err)}
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		return nil, &StartError{Engine: engine, Err: fmt.Errorf("could not create page: %w", err)}
	}
	page.SetDefaultTimeout(float64(p.cfg.ImplicitWait.Milliseconds()))

	s := &Session{
		ID:      uuid.New().String(),
		Engine:  engine,
		Page:    page,
		browser: browser,
		context: context,
		cfg:     p.cfg,
	}
	s.log = p.log.With("session", s.ID[:8], "engine", engine.String())
	s.log.Info("session started")
	return s, nil
}

// Release tears the session down. It is idempotent, tolerates partially
// built sessions and must run on every exit path.
func (p *Provider) Release(s *Session) {
	if s == nil {
		return
	}
	if s.failed && p.cfg.Screenshots && s.Page != nil {
		path := filepath.Join(p.cfg.ScreenshotDir,
			fmt.Sprintf("%s_%s_%d.png", s.Engine, s.ID[:8], time.Now().Unix()))
		if _, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
			Path: playwright.String(path),
		}); err != nil {
			s.log.Warn("failure screenshot not captured", "err", err)
		}
	}
	if s.Page != nil {
		s.Page.Close()
		s.Page = nil
	}
	if s.context != nil {
		s.context.Close()
		s.context = nil
	}
	if s.browser != nil {
		s.browser.Close()
		s.browser = nil
	}
	if s.log != nil {
		s.log.Info("session released")
	}
}

// Close stops the Playwright driver. Sessions must be released first.
func (p *Provider) Close() error {
	return p.pw.Stop()
}

func (p *Provider) browserType(engine Engine) playwright.BrowserType {
	switch engine {
	case Firefox:
		return p.pw.Firefox
	case WebKit:
		return p.pw.WebKit
	default:
		return p.pw.Chromium
	}
}
