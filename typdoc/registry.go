package typdoc

import (
	"fmt"
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

// Recognizer inspects the lines at the cursor and, when it matches,
// returns the recognized block together with the cursor position after
// everything it consumed. A recognizer that matches must consume at least
// one line (next > cur); the parser enforces this to rule out infinite
// loops. A nil block with ok=true consumes lines without emitting a block
// (used for absorbed directives).
type Recognizer func(p *parser, lines []string, cur int) (blk *model.Block, next int, ok bool)

// Registry is an ordered, immutable list of recognizers, tried first to
// last at every cursor position. Order encodes specificity: structural
// container openers first, the catch-all paragraph recognizer last.
type Registry []Recognizer

// DefaultRegistry returns the standard recognizer order. The returned
// slice is freshly allocated; callers may extend a copy for tests without
// affecting other users.
func DefaultRegistry() Registry {
	return Registry{
		recognizeCover,
		recognizeListMacro,
		recognizeMath,
		recognizeCodeFence,
		recognizeHeading,
		recognizeTable,
		recognizeCompositeRow,
		recognizeVSpace,
		recognizeInput,
		recognizeAnswer,
		recognizeMedia,
		recognizeParagraph,
	}
}

// maxLookahead bounds every forward scan for an end token, so a missing
// terminator cannot make a recognizer swallow the rest of the document.
const maxLookahead = 400

// parser carries the per-call state of one parse: the registry in use and
// the warnings accumulated so far. It is created per call and never
// shared.
type parser struct {
	registry Registry
	warnings []Warning
}

func (p *parser) warnf(line int, wt WarningType, format string, args ...interface{}) {
	p.warnings = append(p.warnings, Warning{
		Type:    wt,
		Line:    line + 1,
		Message: fmt.Sprintf(format, args...),
	})
}

// Parse transcodes markup text into a block list using the default
// registry. It never fails: lines nothing recognizes are reported as
// warnings and skipped. A document settings header, when present, is
// consumed, stripped and returned; otherwise the settings result is nil.
func Parse(markup string) ([]model.Block, *model.DocumentSettings, []Warning) {
	return ParseWithRegistry(markup, DefaultRegistry())
}

// ParseWithRegistry is Parse with an explicit recognizer registry.
func ParseWithRegistry(markup string, reg Registry) ([]model.Block, *model.DocumentSettings, []Warning) {
	p := &parser{registry: reg}

	cleaned := Cleanup(markup)
	lines := strings.Split(cleaned, "\n")
	lines, settings := extractSettingsHeader(lines)

	blocks := p.parseLines(lines)
	return blocks, settings, p.warnings
}

// parseLines runs the cursor loop over lines. Container recognizers call
// back into it for their inner slices.
func (p *parser) parseLines(lines []string) []model.Block {
	var blocks []model.Block
	cur := 0
	for cur < len(lines) {
		if strings.TrimSpace(lines[cur]) == "" {
			cur++
			continue
		}
		matched := false
		for _, rec := range p.registry {
			blk, next, ok := rec(p, lines, cur)
			if !ok {
				continue
			}
			if next <= cur {
				p.warnf(cur, WarningRegistryStall, "recognizer did not advance past %q", truncate(lines[cur]))
				next = cur + 1
			}
			if blk != nil {
				blocks = append(blocks, *blk)
			}
			cur = next
			matched = true
			break
		}
		if !matched {
			p.warnf(cur, WarningUnrecognizedLine, "%q", truncate(lines[cur]))
			cur++
		}
	}
	return blocks
}

// parseInner recursively transcodes embedded child markup, as found in
// cover pages and composite row slots.
func (p *parser) parseInner(markup string) []model.Block {
	if strings.TrimSpace(markup) == "" {
		return nil
	}
	return p.parseLines(strings.Split(markup, "\n"))
}

// extractSettingsHeader consumes a leading /*DOC:...*/ marker. The header
// is only honored at the top of the document (blank lines before it are
// allowed) and is stripped before block parsing.
func extractSettingsHeader(lines []string) ([]string, *model.DocumentSettings) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var s model.DocumentSettings
		if marker.Decode(line, marker.TagDoc, &s) {
			rest := append(append([]string{}, lines[:i]...), lines[i+1:]...)
			return rest, &s
		}
		break
	}
	return lines, nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 60 {
		return s[:57] + "..."
	}
	return s
}
