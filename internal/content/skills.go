package content

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/natejswenson/portfolio-engine/internal/types"
)

// DetectShape determines which of the three known skill-entry shapes a raw
// entry uses. Detection happens once at normalization time so downstream code
// can switch on the discriminator instead of probing field presence.
func DetectShape(e gjson.Result) types.SkillShape {
	switch {
	case e.Get("skillName").Exists() || e.Get("skillname").Exists() || e.Get("percentValue").Exists():
		return types.ShapeLegacyProgress
	case e.Get("category").Exists() && e.Get("items").IsArray():
		return types.ShapeToolCategory
	default:
		return types.ShapeCard
	}
}

// skillList normalizes a skills or tools sequence. All three entry shapes
// collapse to SkillEntry; entries whose derived name is empty are skipped.
// Document order is preserved and duplicate slug ids are disambiguated, both
// at the top level and independently within each parent's children.
func skillList(v gjson.Result) []types.SkillEntry {
	entries := []types.SkillEntry{}
	if !v.IsArray() {
		return entries
	}
	v.ForEach(func(_, e gjson.Result) bool {
		if entry, ok := skillEntry(e); ok {
			entries = append(entries, entry)
		}
		return true
	})
	types.DedupeIDs(entries)
	return entries
}

func skillEntry(e gjson.Result) (types.SkillEntry, bool) {
	switch DetectShape(e) {
	case types.ShapeLegacyProgress:
		return legacyProgressEntry(e)
	case types.ShapeToolCategory:
		return toolCategoryEntry(e)
	default:
		return cardEntry(e)
	}
}

// cardEntry normalizes the flat card shape: {name, icon, description}.
func cardEntry(e gjson.Result) (types.SkillEntry, bool) {
	name := strings.TrimSpace(e.Get("name").String())
	if name == "" {
		return types.SkillEntry{}, false
	}
	return types.SkillEntry{
		ID:          types.Slugify(name),
		Name:        name,
		Icon:        strings.TrimSpace(e.Get("icon").String()),
		Description: e.Get("description").String(),
		Shape:       types.ShapeCard,
	}, true
}

// legacyProgressEntry normalizes the legacy numeric-progress shape:
// {skillName, percentValue, imageUrl}. The shape carries no icon token or
// description; the percent value survives only as a rendering aid.
func legacyProgressEntry(e gjson.Result) (types.SkillEntry, bool) {
	name := strings.TrimSpace(firstString(e, "skillName", "skillname"))
	if name == "" {
		return types.SkillEntry{}, false
	}
	return types.SkillEntry{
		ID:      types.Slugify(name),
		Name:    name,
		Shape:   types.ShapeLegacyProgress,
		Percent: int(e.Get("percentValue").Int()),
	}, true
}

// toolCategoryEntry normalizes the category-grouped tool shape:
// {category, items: [string]}. The category becomes a parent entry and each
// item a child, mirroring the two-level hierarchy the markdown parser emits.
func toolCategoryEntry(e gjson.Result) (types.SkillEntry, bool) {
	category := strings.TrimSpace(e.Get("category").String())
	if category == "" {
		return types.SkillEntry{}, false
	}

	children := []types.SkillEntry{}
	e.Get("items").ForEach(func(_, item gjson.Result) bool {
		name := strings.TrimSpace(item.String())
		if name == "" {
			return true
		}
		children = append(children, types.SkillEntry{
			ID:    types.Slugify(name),
			Name:  name,
			Shape: types.ShapeToolCategory,
		})
		return true
	})
	types.DedupeIDs(children)

	entry := types.SkillEntry{
		ID:    types.Slugify(category),
		Name:  category,
		Shape: types.ShapeToolCategory,
	}
	if len(children) > 0 {
		entry.IsParent = true
		entry.Children = children
	}
	return entry, true
}
