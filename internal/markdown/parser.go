// Package markdown parses skill-block markdown documents into normalized
// skill entries. A document is a sequence of level-1 headers, each optionally
// followed by level-2 headers one level deep, with block bodies carrying an
// icon annotation line and free-text description.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/natejswenson/portfolio-engine/internal/types"
)

// parserState tracks where the line scanner is within the document.
type parserState int

const (
	// stateScanning is the state between blocks, before any level-1 header.
	stateScanning parserState = iota
	// stateTopBlock accumulates a level-1 header's body.
	stateTopBlock
	// stateChildBlock accumulates a level-2 header's body nested under the
	// most recent level-1 header.
	stateChildBlock
)

var (
	topHeader   = regexp.MustCompile(`^#\s+[^#]`)
	childHeader = regexp.MustCompile(`^##\s+`)
	iconValue   = regexp.MustCompile(`^-(?i:icon)=<(.+?)\s*/>`)
)

// Parse converts skill-block markdown into a sequence of skill entries.
// Malformed input never fails: empty input and input without recognizable
// headers both yield an empty sequence, a level-2 header with no preceding
// level-1 header is ignored along with its body, and malformed lines are
// treated as plain description text.
func Parse(content string) []types.SkillEntry {
	entries := []types.SkillEntry{}

	content = CleanText(content)
	if content == "" {
		return entries
	}

	var (
		state    = stateScanning
		top      *blockBuilder
		child    *blockBuilder
		children []types.SkillEntry
	)

	flushChild := func() {
		if child != nil {
			children = append(children, child.build())
			child = nil
		}
	}
	flushTop := func() {
		if top == nil {
			return
		}
		flushChild()
		entry := top.build()
		if len(children) > 0 {
			entry.IsParent = true
			types.DedupeIDs(children)
			entry.Children = children
		}
		entries = append(entries, entry)
		top = nil
		children = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case topHeader.MatchString(trimmed):
			flushTop()
			top = newBlockBuilder(strings.TrimSpace(trimmed[1:]))
			state = stateTopBlock
		case childHeader.MatchString(trimmed):
			if state == stateScanning {
				// Orphaned child header with no enclosing top-level block;
				// skip it and its body.
				continue
			}
			flushChild()
			child = newBlockBuilder(strings.TrimSpace(trimmed[2:]))
			state = stateChildBlock
		default:
			switch state {
			case stateTopBlock:
				top.feed(trimmed)
			case stateChildBlock:
				child.feed(trimmed)
			}
		}
	}
	flushTop()

	types.DedupeIDs(entries)
	return entries
}

// blockBuilder accumulates one header block's body lines.
type blockBuilder struct {
	name string
	icon string
	desc []string
}

func newBlockBuilder(name string) *blockBuilder {
	return &blockBuilder{name: name}
}

// feed consumes one body line. Icon annotation lines set the entry's icon
// token; other dash-prefixed lines and stray header fragments are skipped;
// everything else joins the description.
func (b *blockBuilder) feed(trimmed string) {
	if trimmed == "" {
		return
	}
	if strings.HasPrefix(strings.ToLower(trimmed), "-icon=") {
		b.icon = extractIconToken(trimmed)
		return
	}
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
		return
	}
	b.desc = append(b.desc, trimmed)
}

func (b *blockBuilder) build() types.SkillEntry {
	description := strings.TrimSpace(FixTypos(strings.Join(b.desc, " ")))
	if description == "" {
		description = placeholderDescription(b.name)
	}
	return types.SkillEntry{
		ID:          types.Slugify(b.name),
		Name:        strings.TrimSpace(b.name),
		Icon:        b.icon,
		Description: description,
	}
}

// extractIconToken pulls the token out of an icon annotation line such as
// "-icon=<SiTerraform />". The icon keyword matches case-insensitively but the
// token itself is returned verbatim. A malformed annotation yields "".
func extractIconToken(line string) string {
	if m := iconValue.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// placeholderDescription synthesizes a non-empty description for entries whose
// block body carried no text.
func placeholderDescription(name string) string {
	return fmt.Sprintf("Placeholder: %s experience and expertise", name)
}
