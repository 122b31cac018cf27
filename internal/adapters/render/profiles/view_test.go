package profiles

import (
	"strings"
	"testing"

	"github.com/bnema/aistudio-video-cli/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProfilesInRotationOrder(t *testing.T) {
	output, err := Render([]application.ProfileStatus{
		{Profile: "Default", DataDir: "/chrome/Default", Present: true},
		{Profile: "Profile 1", DataDir: "/chrome/Profile 1", Present: false},
	}, RenderOptions{UserDataPath: "/chrome", SaveDir: "/videos"})

	require.NoError(t, err)
	assert.Contains(t, output, "Chrome Profiles")
	assert.Contains(t, output, "profiles: 2  missing: 1")
	assert.Contains(t, output, "user data: /chrome")
	assert.Contains(t, output, "videos:    /videos")
	assert.Contains(t, output, " 1. Default [present] /chrome/Default")
	assert.Contains(t, output, " 2. Profile 1 [missing] /chrome/Profile 1")
	assert.Less(t, strings.Index(output, "Default"), strings.Index(output, "Profile 1"))
}

func TestRenderNoProfiles(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "profiles: 0")
	assert.Contains(t, output, "No profiles configured.")
	assert.NotContains(t, output, "user data:")
}
