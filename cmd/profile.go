package cmd

import (
	"fmt"

	profilesadapter "github.com/bnema/aistudio-video-cli/internal/adapters/render/profiles"
	"github.com/bnema/aistudio-video-cli/internal/application"
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the profile rotation order",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileAddCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show profiles in rotation order and whether their data exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := profileService(app)
			if err != nil {
				return err
			}

			listing, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.profileRenderer(listing.Profiles, profilesadapter.RenderOptions{
				UserDataPath: listing.UserDataPath,
				SaveDir:      listing.SaveDir,
			})
			if err != nil {
				return fmt.Errorf("render profiles: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newProfileAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Append a profile to the end of the rotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := profileService(app)
			if err != nil {
				return err
			}

			cfg, err := svc.Add(cmd.Context(), domain.Profile(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added profile %q (%d in rotation)\n", args[0], len(cfg.Profiles))
			return err
		},
	}
}

func newProfileRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a profile from the rotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := profileService(app)
			if err != nil {
				return err
			}

			cfg, err := svc.Remove(cmd.Context(), domain.Profile(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %q (%d in rotation)\n", args[0], len(cfg.Profiles))
			return err
		},
	}
}

func profileService(app *app) (*application.ProfileService, error) {
	store, err := app.configStore()
	if err != nil {
		return nil, err
	}
	return application.NewProfileService(store, app.fs), nil
}
