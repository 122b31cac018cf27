package cmd

import (
	"fmt"
	"strings"

	configadapter "github.com/bnema/aistudio-video-cli/internal/adapters/config"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and inspect the configuration file",
	}

	cmd.AddCommand(
		newConfigExampleCmd(),
		newConfigInitCmd(app),
		newConfigShowCmd(app),
	)

	return cmd
}

func newConfigExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a minimal configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), configadapter.ExampleJSON)
			return err
		},
	}
}

func newConfigInitCmd(app *app) *cobra.Command {
	var (
		userDataPath string
		saveDir      string
		profiles     []string
		driver       string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with defaults filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.configStore()
			if err != nil {
				return err
			}

			exists, err := store.Exists()
			if err != nil {
				return fmt.Errorf("check config file: %w", err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", store.Path())
			}

			cfg := domain.DefaultConfig()
			cfg.UserDataPath = strings.TrimSpace(userDataPath)
			cfg.SaveDir = strings.TrimSpace(saveDir)
			cfg.Browser.Driver = domain.Driver(driver)
			for _, profile := range profiles {
				cfg.Profiles = append(cfg.Profiles, domain.Profile(profile))
			}
			cfg.Profiles = domain.NormalizeProfiles(cfg.Profiles)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrConfigInvalid, err)
			}

			if err := store.Save(cmd.Context(), cfg); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d profile(s)\n", store.Path(), len(cfg.Profiles))
			return err
		},
	}

	cmd.Flags().StringVar(&userDataPath, "user-data-path", "", "Chrome user data directory holding the profiles")
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "Directory for videos and generation.log")
	cmd.Flags().StringSliceVar(&profiles, "profile", []string{"Default"}, "Profile to rotate through (repeatable, in order)")
	cmd.Flags().StringVar(&driver, "driver", string(domain.DriverChromedp), "Browser driver: chromedp or rod")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	_ = cmd.MarkFlagRequired("user-data-path")
	_ = cmd.MarkFlagRequired("save-dir")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration, defaults and AVG_* overrides included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(app.configPath)
			if err != nil {
				return err
			}

			data, err := configadapter.Encode(app.configPath, cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
