// Package validation provides structural checks over normalized display
// models. Checks never block rendering; they surface content problems
// (unknown icon tokens, missing links, empty sections) to document authors.
package validation

import (
	"fmt"

	"github.com/natejswenson/portfolio-engine/internal/icons"
	"github.com/natejswenson/portfolio-engine/internal/types"
)

// Issue types reported by Check.
const (
	IssueMissingIdentity = "missing_identity"
	IssueMissingURL      = "missing_url"
	IssueUnknownIcon     = "unknown_icon"
	IssueMissingAuthor   = "missing_author"
	IssueEmptyContent    = "empty_content"
)

// Issue represents a single content problem found in a display model
type Issue struct {
	Type    string `json:"type"`
	Field   string `json:"field"`
	Details string `json:"details"`
}

// Check runs all structural checks against a display model. The registry is
// used to flag icon tokens that would silently fall back to the default
// glyph at render time; pass nil to use the builtin icon set.
func Check(model *types.DisplayModel, registry *icons.Registry) []Issue {
	if model == nil {
		return []Issue{}
	}
	if registry == nil {
		registry = icons.Builtin()
	}

	issues := []Issue{}
	issues = append(issues, checkIdentity(model)...)
	issues = append(issues, checkSocialLinks(model)...)
	issues = append(issues, checkSkillIcons("skills", model.Skills, registry)...)
	issues = append(issues, checkSkillIcons("tools", model.Tools, registry)...)
	issues = append(issues, checkPortfolio(model)...)
	issues = append(issues, checkTestimonials(model)...)
	return issues
}

func checkIdentity(model *types.DisplayModel) []Issue {
	issues := []Issue{}
	if model.Name == "" {
		issues = append(issues, Issue{
			Type:    IssueMissingIdentity,
			Field:   "name",
			Details: "document has no name; the header renders empty",
		})
	}
	if model.Role == "" {
		issues = append(issues, Issue{
			Type:    IssueMissingIdentity,
			Field:   "role",
			Details: "document has no role; the header renders empty",
		})
	}
	return issues
}

func checkSocialLinks(model *types.DisplayModel) []Issue {
	issues := []Issue{}
	for i, link := range model.SocialLinks {
		if link.URL == "" {
			issues = append(issues, Issue{
				Type:    IssueMissingURL,
				Field:   fmt.Sprintf("socialLinks[%d]", i),
				Details: fmt.Sprintf("social link %q has no URL", link.Name),
			})
		}
	}
	return issues
}

// checkSkillIcons flags icon tokens the registry does not know. Legacy
// numeric-progress entries carry no icon token and are skipped, as are tool
// items, which render as text pills.
func checkSkillIcons(field string, entries []types.SkillEntry, registry *icons.Registry) []Issue {
	issues := []Issue{}
	for i, entry := range entries {
		if entry.Shape == types.ShapeLegacyProgress || entry.Shape == types.ShapeToolCategory {
			continue
		}
		if entry.Icon == "" {
			continue
		}
		if _, ok := registry.Lookup(entry.Icon); !ok {
			issues = append(issues, Issue{
				Type:    IssueUnknownIcon,
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Details: fmt.Sprintf("icon token %q is not registered; %q renders with the default glyph", entry.Icon, entry.Name),
			})
		}
		for j, child := range entry.Children {
			if child.Icon == "" {
				continue
			}
			if _, ok := registry.Lookup(child.Icon); !ok {
				issues = append(issues, Issue{
					Type:    IssueUnknownIcon,
					Field:   fmt.Sprintf("%s[%d].children[%d]", field, i, j),
					Details: fmt.Sprintf("icon token %q is not registered; %q renders with the default glyph", child.Icon, child.Name),
				})
			}
		}
	}
	return issues
}

func checkPortfolio(model *types.DisplayModel) []Issue {
	issues := []Issue{}
	for i, item := range model.Portfolio {
		if item.URL == "" && item.ImageURL == "" {
			issues = append(issues, Issue{
				Type:    IssueEmptyContent,
				Field:   fmt.Sprintf("portfolio[%d]", i),
				Details: fmt.Sprintf("portfolio item %q has neither a URL nor an image", item.Name),
			})
		}
	}
	return issues
}

func checkTestimonials(model *types.DisplayModel) []Issue {
	issues := []Issue{}
	for i, testimonial := range model.Testimonials {
		if testimonial.Author == "" {
			issues = append(issues, Issue{
				Type:    IssueMissingAuthor,
				Field:   fmt.Sprintf("testimonials[%d]", i),
				Details: "testimonial has no author",
			})
		}
	}
	return issues
}
