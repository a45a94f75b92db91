package project

import "strings"

// Dashboard tabs that constrain the project list by type.
const (
	TabProjects = "projects"
	TabServices = "services"
)

// All is the wildcard value for the type and sector filters.
const All = "All"

// Filter describes the dashboard's active filter criteria. All four
// predicates are ANDed: a project excluded by the tab stays excluded even
// when the type filter alone would admit it.
type Filter struct {
	ActiveTab string
	Type      string
	Sector    string
	Search    string
}

// Matches reports whether a project passes every active predicate.
func (f Filter) Matches(p Project) bool {
	switch f.ActiveTab {
	case TabProjects:
		if p.Type != TypeRD {
			return false
		}
	case TabServices:
		if p.Type != TypeService {
			return false
		}
	}

	if f.Type != "" && f.Type != All && p.Type.DisplayLabel() != f.Type {
		return false
	}

	if f.Sector != "" && f.Sector != All && p.Sector != f.Sector {
		return false
	}

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Client), q) &&
			!strings.Contains(strings.ToLower(p.Sector), q) {
			return false
		}
	}

	return true
}

// Apply returns the projects matching the filter, preserving order.
func (f Filter) Apply(projects []Project) []Project {
	matched := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
