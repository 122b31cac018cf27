package profiles

import (
	"fmt"

	"github.com/bnema/aistudio-video-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	UserDataPath string
	SaveDir      string
}

func renderView(statuses []application.ProfileStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Chrome Profiles"),
		s.header.Render(fmt.Sprintf("profiles: %d  missing: %d", len(statuses), countMissing(statuses))),
	}
	if opts.UserDataPath != "" {
		lines = append(lines, s.header.Render("user data: "+opts.UserDataPath))
	}
	if opts.SaveDir != "" {
		lines = append(lines, s.header.Render("videos:    "+opts.SaveDir))
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No profiles configured. Add one with `avg profile add <name>`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, "")
	for i, status := range statuses {
		lines = append(lines, profileLine(i+1, status, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileLine(position int, status application.ProfileStatus, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.order.Render(fmt.Sprintf("%2d. ", position)),
		s.profile.Render(string(status.Profile)),
		" ",
		presenceBadge(status.Present, s),
		" ",
		s.detail.Render(status.DataDir),
	)
}

func presenceBadge(present bool, s styles) string {
	if present {
		return s.present.Render("[present]")
	}
	return s.missing.Render("[missing]")
}

func countMissing(statuses []application.ProfileStatus) int {
	missing := 0
	for _, status := range statuses {
		if !status.Present {
			missing++
		}
	}
	return missing
}
