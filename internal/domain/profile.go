package domain

import "strings"

// Profile names one Chrome user-data partition. Rotation order is the order
// profiles appear in configuration.
type Profile string

func (p Profile) String() string {
	return string(p)
}

// NormalizeProfiles trims names, drops empty entries and collapses duplicates,
// keeping the first occurrence so the configured order is preserved.
func NormalizeProfiles(profiles []Profile) []Profile {
	normalized := make([]Profile, 0, len(profiles))
	seen := make(map[Profile]struct{}, len(profiles))
	for _, profile := range profiles {
		trimmed := Profile(strings.TrimSpace(string(profile)))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	return normalized
}
