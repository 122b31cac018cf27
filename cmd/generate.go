package cmd

import (
	"context"
	"errors"
	"fmt"

	configadapter "github.com/bnema/aistudio-video-cli/internal/adapters/config"
	"github.com/bnema/aistudio-video-cli/internal/application"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errGenerationAborted = errors.New("generation aborted")

func newGenerateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Rotate through profiles until one generates a video",
		Long:  "Launches Chrome once per configured profile, in order, submits the configured prompt and stops at the first profile that produces a video. Running out of profiles is not an error.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(app.configPath)
			if err != nil {
				printConfigHelp(cmd, app.configPath, err)
				return err
			}

			logger, closeLog, err := app.openLogger(app.fs, cfg.SaveDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() {
				_ = closeLog()
			}()

			launcher, err := app.newLauncher(cfg, logger)
			if err != nil {
				logger.Error("Fatal error", zap.Error(err))
				return err
			}

			return runGeneration(cmd.Context(), app, cfg, launcher, logger)
		},
	}
}

// runGeneration returns nil whenever the rotation ran to completion, whatever
// its result. Sessions contain their own panics, so only a fault outside the
// per-profile attempts is reported as an error.
func runGeneration(ctx context.Context, app *app, cfg domain.Config, launcher ports.BrowserLauncher, logger *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Fatal error", zap.Any("panic", r))
			err = fmt.Errorf("%w: %v", errGenerationAborted, r)
		}
	}()

	logger = logger.With(zap.String("run_id", app.newRunID()))

	profiles := domain.NormalizeProfiles(cfg.Profiles)
	logger.Info("Starting video generation",
		zap.String("driver", string(cfg.Browser.Driver)),
		zap.Int("profiles", len(profiles)),
	)
	logger.Info("Using Chrome profiles from", zap.String("path", cfg.UserDataPath))
	logger.Info("Saving videos to", zap.String("path", cfg.SaveDir))

	driver := application.NewSessionDriver(launcher, cfg, app.clock, logger)
	summary := application.NewRotationService(driver, logger).Run(ctx, profiles)

	fields := []zap.Field{zap.Int("attempts", len(summary.Attempts)), zap.Bool("succeeded", summary.Succeeded())}
	if summary.Succeeded() {
		fields = append(fields, zap.String("profile", string(summary.Winner)))
	}
	logger.Info("Automation completed", fields...)

	return nil
}

func printConfigHelp(cmd *cobra.Command, path string, err error) {
	out := cmd.ErrOrStderr()
	_, _ = fmt.Fprintf(out, "Error loading %s: %v\n", path, err)
	_, _ = fmt.Fprintln(out, "Required format:")
	_, _ = fmt.Fprintln(out, configadapter.ExampleJSON)
}
