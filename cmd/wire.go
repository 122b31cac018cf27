package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	chromedpadapter "github.com/bnema/aistudio-video-cli/internal/adapters/browser/chromedp"
	rodadapter "github.com/bnema/aistudio-video-cli/internal/adapters/browser/rod"
	configadapter "github.com/bnema/aistudio-video-cli/internal/adapters/config"
	"github.com/bnema/aistudio-video-cli/internal/adapters/logging"
	profilesadapter "github.com/bnema/aistudio-video-cli/internal/adapters/render/profiles"
	"github.com/bnema/aistudio-video-cli/internal/application"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type app struct {
	configPath string

	fs              afero.Fs
	loadConfig      func(path string) (domain.Config, error)
	newLauncher     func(cfg domain.Config, logger *zap.Logger) (ports.BrowserLauncher, error)
	openLogger      func(fsys afero.Fs, saveDir string, console io.Writer) (*zap.Logger, func() error, error)
	profileRenderer func([]application.ProfileStatus, profilesadapter.RenderOptions) (string, error)
	clock           clockwork.Clock
	newRunID        func() string
}

func wireApp() (*app, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	osFs := afero.NewOsFs()

	return &app{
		fs:              osFs,
		loadConfig:      configadapter.NewLoader(osFs).Load,
		newLauncher:     newLauncher,
		openLogger:      logging.Open,
		profileRenderer: profilesadapter.Render,
		clock:           clockwork.NewRealClock(),
		newRunID:        uuid.NewString,
	}, nil
}

func newLauncher(cfg domain.Config, logger *zap.Logger) (ports.BrowserLauncher, error) {
	switch cfg.Browser.Driver {
	case domain.DriverChromedp, "":
		return chromedpadapter.NewLauncher(cfg, logger), nil
	case domain.DriverRod:
		return rodadapter.NewLauncher(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownDriver, cfg.Browser.Driver)
	}
}

func (a *app) configStore() (*configadapter.Store, error) {
	return configadapter.NewStore(a.fs, a.configPath)
}
