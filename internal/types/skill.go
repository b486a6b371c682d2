package types

import (
	"fmt"
	"regexp"
	"strings"
)

// SkillShape discriminates the input shape a skill entry was normalized from.
type SkillShape string

const (
	// ShapeCard is the flat card shape: {name, icon, description}.
	ShapeCard SkillShape = "card"
	// ShapeLegacyProgress is the legacy numeric-progress shape: {skillName, percentValue}.
	ShapeLegacyProgress SkillShape = "legacy_progress"
	// ShapeToolCategory is the category-grouped tool shape: {category, items}.
	ShapeToolCategory SkillShape = "tool_category"
)

// SkillEntry is a normalized unit describing one skill or tool. Only top-level
// entries may set IsParent with non-empty Children; children never nest
// further, so the hierarchy is at most two levels deep.
type SkillEntry struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon,omitempty"`
	Description string       `json:"description"`
	IsParent    bool         `json:"is_parent"`
	Children    []SkillEntry `json:"children,omitempty"`
	Shape       SkillShape   `json:"shape,omitempty"`

	// Percent carries the legacy numeric-progress value for rendering paths
	// that still draw progress bars. Zero when the source had none.
	Percent int `json:"percent,omitempty"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a lowercase, hyphen-separated id from a display name.
// Whitespace runs collapse to a single hyphen and "/" becomes "-", so
// "CI/CD Tooling" and "ci/cd tooling" share the same id. Both the content
// mapper and the markdown parser derive ids through this function, so
// identical names always produce identical ids.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	return strings.ReplaceAll(slug, "/", "-")
}

// DedupeIDs rewrites duplicate ids in place, appending the smallest numeric
// suffix ("go", "go-2", "go-3", ...) that keeps every id in the slice unique.
// Entries keep their document order; nothing is dropped.
func DedupeIDs(entries []SkillEntry) {
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		id := entries[i].ID
		if !seen[id] {
			seen[id] = true
			continue
		}
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s-%d", id, n)
			if !seen[candidate] {
				entries[i].ID = candidate
				seen[candidate] = true
				break
			}
		}
	}
}
