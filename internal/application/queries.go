package application

import (
	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/afero"
)

type ProfileStatus struct {
	Profile domain.Profile
	DataDir string
	Present bool
}

// InspectProfiles reports, in rotation order, where each profile's browser data
// lives and whether that directory exists yet.
func InspectProfiles(fs afero.Fs, cfg domain.Config) []ProfileStatus {
	profiles := domain.NormalizeProfiles(cfg.Profiles)
	statuses := make([]ProfileStatus, 0, len(profiles))
	for _, profile := range profiles {
		dir := cfg.ProfileDir(profile)
		present, err := afero.DirExists(fs, dir)
		statuses = append(statuses, ProfileStatus{
			Profile: profile,
			DataDir: dir,
			Present: err == nil && present,
		})
	}

	return statuses
}
