package profile

import (
	"fmt"
	"strings"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const frontMatterDelimiter = "---"

// span is one heading-delimited slice of a document body. lines holds the
// original text verbatim, heading included, so untouched spans survive a
// merge byte-for-byte.
type span struct {
	key   SectionKey
	lines []string
}

// documentSpans is the structured-edit model for merge operations: header
// block, pre-heading preamble, and the ordered body spans.
type documentSpans struct {
	header   []string
	preamble []string
	spans    []span
}

// splitSpans parses raw document text into spans without normalising any of
// the original line content.
func splitSpans(raw []byte) documentSpans {
	lines := strings.Split(string(raw), "\n")
	var doc documentSpans

	rest := lines
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == frontMatterDelimiter {
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == frontMatterDelimiter {
				doc.header = lines[:i+1]
				rest = lines[i+1:]
				break
			}
		}
	}

	current := -1
	for _, line := range rest {
		if strings.HasPrefix(strings.TrimSpace(line), headingMarker) {
			title := strings.TrimSpace(line)[len(headingMarker):]
			doc.spans = append(doc.spans, span{key: ClassifyHeading(title), lines: []string{line}})
			current = len(doc.spans) - 1
			continue
		}
		if current < 0 {
			doc.preamble = append(doc.preamble, line)
			continue
		}
		doc.spans[current].lines = append(doc.spans[current].lines, line)
	}
	return doc
}

// join re-serialises the spans back into document text.
func (d documentSpans) join() []byte {
	var lines []string
	lines = append(lines, d.header...)
	lines = append(lines, d.preamble...)
	for _, sp := range d.spans {
		lines = append(lines, sp.lines...)
	}
	return []byte(strings.Join(lines, "\n"))
}

// updateHeaderField rewrites the value of a `key:` line inside the header
// block. Missing keys are left alone; the merge must not invent metadata the
// original header never carried.
func (d *documentSpans) updateHeaderField(key, value string) {
	if value == "" {
		return
	}
	prefix := key + ":"
	for i, line := range d.header {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			d.header[i] = fmt.Sprintf("%s: %q", key, value)
			return
		}
	}
}

// courseLabelFor maps a project section key to its course heading label.
func courseLabelFor(key SectionKey) string {
	if key == SectionPracticum2 {
		return "MSDS 696 - Practicum II"
	}
	return "MSDS 692 - Practicum I"
}

func courseCodeFor(key SectionKey) string {
	if key == SectionPracticum2 {
		return "MSDS 696"
	}
	return "MSDS 692"
}

// RenderProjectSection serialises a project record back into the Markdown
// section layout the extractors understand, heading line included.
func RenderProjectSection(record interfaces.Project, key SectionKey) []string {
	lines := []string{
		"## " + courseLabelFor(key),
		"",
		"**Title:** " + record.Title,
		"",
	}

	if len(record.Tags) > 0 {
		lines = append(lines, "**Tags:** "+strings.Join(record.Tags, ", "), "")
	}

	lines = append(lines, "**Abstract:** "+record.Abstract, "")

	if len(record.Achievements) > 0 {
		lines = append(lines, "**Key Achievements:**")
		for _, achievement := range record.Achievements {
			lines = append(lines, "- "+achievement)
		}
		lines = append(lines, "")
	}

	if record.Technologies != "" {
		lines = append(lines, "**Technologies Used:** "+record.Technologies, "")
	}

	lines = append(lines, "**Links:**",
		fmt.Sprintf("- GitHub Repository: [View Code](%s)", orPlaceholder(record.GitHub)),
		fmt.Sprintf("- Project Report: [Download Report](%s)", orPlaceholder(record.Report)),
		fmt.Sprintf("- Presentation Slides: [View Slides](%s)", orPlaceholder(record.Slides)))
	if record.Demo != "" && record.Demo != PlaceholderURL {
		lines = append(lines, fmt.Sprintf("- Live Demo: [Open Demo](%s)", record.Demo))
	}
	lines = append(lines, "")

	return lines
}

func orPlaceholder(url string) string {
	if strings.TrimSpace(url) == "" {
		return PlaceholderURL
	}
	return url
}

// Merge applies a new project record to an existing document. A matching
// project span is replaced in place; otherwise the rendered section is
// inserted immediately before Contact, falling back to an end-of-document
// append when no Contact heading exists. Every other span is preserved
// byte-for-byte. The header's course and semester fields are refreshed
// regardless of which path applies. With no existing document, a complete
// profile is synthesised from the template.
func (s *Service) Merge(doc *interfaces.Document, record interfaces.Project, sectionKey string) ([]byte, error) {
	key := SectionKey(sectionKey)
	if key != SectionPracticum1 && key != SectionPracticum2 {
		return nil, fmt.Errorf("%w: %q", ErrSectionKeyInvalid, sectionKey)
	}
	if strings.TrimSpace(record.Title) == "" {
		return nil, ErrProjectTitleMissed
	}

	if doc == nil || len(doc.Raw) == 0 {
		var meta interfaces.Metadata
		if doc != nil {
			meta = doc.Metadata
		}
		return NewProfileFromRecord(meta, record, key, s.cfg.CurrentSemester), nil
	}

	spans := splitSpans(doc.Raw)
	section := RenderProjectSection(record, key)

	switch {
	case spans.replace(key, section):
		s.logger.Debug("profile.merge.replaced", "section", sectionKey)
	case spans.insertBefore(SectionContact, key, section):
		s.logger.Debug("profile.merge.inserted", "section", sectionKey)
	default:
		// No matching section and no Contact anchor: append, never fail.
		spans.spans = append(spans.spans, span{key: key, lines: section})
		s.logger.Debug("profile.merge.appended", "section", sectionKey)
	}

	spans.updateHeaderField("course", courseCodeFor(key))
	spans.updateHeaderField("semester", s.cfg.CurrentSemester)

	return spans.join(), nil
}

func (d *documentSpans) replace(key SectionKey, lines []string) bool {
	for i := range d.spans {
		if d.spans[i].key == key {
			d.spans[i].lines = lines
			return true
		}
	}
	return false
}

func (d *documentSpans) insertBefore(anchor, key SectionKey, lines []string) bool {
	for i := range d.spans {
		if d.spans[i].key == anchor {
			inserted := append([]span{}, d.spans[:i]...)
			inserted = append(inserted, span{key: key, lines: lines})
			inserted = append(inserted, d.spans[i:]...)
			d.spans = inserted
			return true
		}
	}
	return false
}
