package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/bnema/aistudio-video-cli/internal/ports"
	"github.com/spf13/afero"
)

// ProfileService reads and edits the profile list of a stored configuration.
type ProfileService struct {
	configs ports.ConfigRepository
	fs      afero.Fs
}

// ProfileListing is the stored rotation with each profile's data directory
// checked on disk.
type ProfileListing struct {
	UserDataPath string
	SaveDir      string
	Profiles     []ProfileStatus
}

func NewProfileService(configs ports.ConfigRepository, fs afero.Fs) *ProfileService {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &ProfileService{configs: configs, fs: fs}
}

func (s *ProfileService) List(ctx context.Context) (ProfileListing, error) {
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return ProfileListing{}, err
	}

	return ProfileListing{
		UserDataPath: cfg.UserDataPath,
		SaveDir:      cfg.SaveDir,
		Profiles:     InspectProfiles(s.fs, cfg),
	}, nil
}

// Add appends profile to the end of the rotation order.
func (s *ProfileService) Add(ctx context.Context, profile domain.Profile) (domain.Config, error) {
	profile = domain.Profile(strings.TrimSpace(string(profile)))
	if profile == "" {
		return domain.Config{}, fmt.Errorf("profile name is required")
	}

	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}

	for _, existing := range cfg.Profiles {
		if existing == profile {
			return domain.Config{}, fmt.Errorf("%w: %s", domain.ErrProfileExists, profile)
		}
	}

	cfg.Profiles = domain.NormalizeProfiles(append(cfg.Profiles, profile))
	if err := s.configs.Save(ctx, cfg); err != nil {
		return domain.Config{}, fmt.Errorf("save config: %w", err)
	}

	return cfg, nil
}

func (s *ProfileService) Remove(ctx context.Context, profile domain.Profile) (domain.Config, error) {
	profile = domain.Profile(strings.TrimSpace(string(profile)))

	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}

	kept := make([]domain.Profile, 0, len(cfg.Profiles))
	found := false
	for _, existing := range cfg.Profiles {
		if existing == profile {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return domain.Config{}, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profile)
	}

	cfg.Profiles = kept
	if err := s.configs.Save(ctx, cfg); err != nil {
		return domain.Config{}, fmt.Errorf("save config: %w", err)
	}

	return cfg, nil
}
