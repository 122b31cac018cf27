package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Driver string

const (
	DriverChromedp Driver = "chromedp"
	DriverRod      Driver = "rod"

	DefaultDebugPort = 9222
)

type BrowserOptions struct {
	Driver    Driver
	ExecPath  string
	DebugPort int
	Headless  bool
}

// Timeouts are the fixed per-step budgets of a session.
type Timeouts struct {
	Navigation    time.Duration
	Login         time.Duration
	Prompt        time.Duration
	Option        time.Duration
	Submit        time.Duration
	Download      time.Duration
	MaxWait       time.Duration
	CheckInterval time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Navigation:    60 * time.Second,
		Login:         60 * time.Second,
		Prompt:        60 * time.Second,
		Option:        10 * time.Second,
		Submit:        30 * time.Second,
		Download:      5 * time.Second,
		MaxWait:       5 * time.Minute,
		CheckInterval: 5 * time.Second,
	}
}

// Config is built once at startup and passed explicitly to every component.
type Config struct {
	UserDataPath string
	Profiles     []Profile
	SaveDir      string
	Browser      BrowserOptions
	Job          Job
	Timeouts     Timeouts
}

func DefaultConfig() Config {
	return Config{
		Browser: BrowserOptions{
			Driver:    DriverChromedp,
			DebugPort: DefaultDebugPort,
		},
		Job: Job{
			TargetURL: DefaultTargetURL,
			Prompt:    DefaultPrompt,
			Video:     DefaultVideoSettings(),
		},
		Timeouts: DefaultTimeouts(),
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.UserDataPath) == "" {
		return fmt.Errorf("userDataPath is required")
	}
	if strings.TrimSpace(c.SaveDir) == "" {
		return fmt.Errorf("saveDir is required")
	}
	switch c.Browser.Driver {
	case DriverChromedp, DriverRod:
	default:
		return fmt.Errorf("%w %q", ErrUnknownDriver, c.Browser.Driver)
	}
	if c.Browser.DebugPort < 0 || c.Browser.DebugPort > 65535 {
		return fmt.Errorf("browser.debugPort %d out of range", c.Browser.DebugPort)
	}
	if strings.TrimSpace(c.Job.TargetURL) == "" {
		return fmt.Errorf("job.targetUrl is required")
	}
	if strings.TrimSpace(c.Job.Prompt) == "" {
		return fmt.Errorf("job.prompt is required")
	}
	if c.Timeouts.CheckInterval <= 0 {
		return fmt.Errorf("timeouts.checkInterval must be positive")
	}
	if c.Timeouts.MaxWait < 0 {
		return fmt.Errorf("timeouts.maxWait must not be negative")
	}

	return nil
}

// ProfileDir is the user-data directory a profile's browser is launched with.
func (c Config) ProfileDir(profile Profile) string {
	return filepath.Join(c.UserDataPath, string(profile))
}
