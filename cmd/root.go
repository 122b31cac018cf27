package cmd

import (
	"context"
	"os"
	"os/signal"

	configadapter "github.com/bnema/aistudio-video-cli/internal/adapters/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	if err != nil {
		rootCmd := baseRootCmd()
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	return buildRootCmd(app)
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "avg",
		Short:         "AI Studio video generator (avg): rotate Chrome profiles until a video is produced",
		Long:          "avg drives the AI Studio video generator through Chrome, trying each configured profile in order until one produces a video. Quota, timeout and page failures move on to the next profile.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
}

func buildRootCmd(app *app) *cobra.Command {
	rootCmd := baseRootCmd()
	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", configadapter.DefaultPath, "Path to the configuration file (.json, .toml or .yaml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(app),
		newConfigCmd(app),
		newProfileCmd(app),
	)

	return rootCmd
}
