package application

import (
	"path/filepath"
	"testing"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectProfiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Join("/chrome", "Default"), 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join("/chrome", "Profile 2"), []byte("not a dir"), 0o644))

	cfg := testConfig()
	cfg.Profiles = []domain.Profile{"Default", "Profile 1", "Profile 2", "Default"}

	statuses := InspectProfiles(fs, cfg)

	require.Len(t, statuses, 3)
	assert.Equal(t, ProfileStatus{Profile: "Default", DataDir: filepath.Join("/chrome", "Default"), Present: true}, statuses[0])
	assert.Equal(t, ProfileStatus{Profile: "Profile 1", DataDir: filepath.Join("/chrome", "Profile 1"), Present: false}, statuses[1])
	assert.False(t, statuses[2].Present)
}

func TestInspectProfilesEmpty(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Profiles = nil

	assert.Empty(t, InspectProfiles(afero.NewMemMapFs(), cfg))
}
