package profile

import (
	"strings"
)

// SectionKey is the canonical identifier a heading's free-text title maps to.
type SectionKey string

const (
	SectionAbout        SectionKey = "about"
	SectionSkills       SectionKey = "skills"
	SectionPracticum1   SectionKey = "practicum1"
	SectionPracticum2   SectionKey = "practicum2"
	SectionContact      SectionKey = "contact"
	SectionExperience   SectionKey = "experience"
	SectionAchievements SectionKey = "achievements"
	SectionUnclassified SectionKey = "unclassified"
)

const headingMarker = "## "

// classificationRule maps heading substrings to a canonical key. Rules are
// evaluated in order and the first match wins, so more specific patterns
// ("practicum ii", "msds 696") must precede the shorter ones they contain
// ("practicum i", "msds 692").
type classificationRule struct {
	key      SectionKey
	patterns []string
}

var classificationRules = []classificationRule{
	{key: SectionAbout, patterns: []string{"about"}},
	{key: SectionSkills, patterns: []string{"skill"}},
	{key: SectionPracticum2, patterns: []string{"practicum ii", "msds 696", "msds696"}},
	{key: SectionPracticum1, patterns: []string{"practicum i", "msds 692", "msds692"}},
	{key: SectionContact, patterns: []string{"contact"}},
	{key: SectionExperience, patterns: []string{"experience"}},
	{key: SectionAchievements, patterns: []string{"achievement", "award"}},
}

// ClassifyHeading maps heading text (without the "## " marker) onto its
// canonical section key. Matching is case-insensitive substring containment.
func ClassifyHeading(title string) SectionKey {
	lowered := strings.ToLower(strings.TrimSpace(title))
	for _, rule := range classificationRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowered, pattern) {
				return rule.key
			}
		}
	}
	return SectionUnclassified
}

// RawSection pairs a canonical key with the accumulated body text of the
// section, heading line excluded and blank lines preserved.
type RawSection struct {
	Key  SectionKey
	Text string
}

// segmenterState tracks the scanner position: before any heading, or inside
// the section identified by current.
type segmenterState struct {
	current SectionKey
	buf     []string
}

// SegmentBody scans body text line by line and groups lines under canonical
// section keys. The returned slice preserves first-appearance order; when two
// headings map to the same canonical key the later section's text wins and
// the earlier accumulation is discarded. Text before the first heading, and
// text under unrecognised headings, lands in the "unclassified" bucket. A
// body with no heading markers yields a single unclassified section.
func SegmentBody(body []byte) []RawSection {
	var (
		order []SectionKey
		texts = map[SectionKey]string{}
		state = segmenterState{current: SectionUnclassified}
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(state.buf, "\n"))
		if text == "" {
			return
		}
		if _, seen := texts[state.current]; !seen {
			order = append(order, state.current)
		}
		// Last write wins per canonical key within a single pass.
		texts[state.current] = text
	}

	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, headingMarker) {
			flush()
			state = segmenterState{current: ClassifyHeading(trimmed[len(headingMarker):])}
			continue
		}
		// Blank lines are kept so downstream consumers can split paragraphs.
		state.buf = append(state.buf, line)
	}
	flush()

	sections := make([]RawSection, 0, len(order))
	for _, key := range order {
		sections = append(sections, RawSection{Key: key, Text: texts[key]})
	}
	return sections
}
