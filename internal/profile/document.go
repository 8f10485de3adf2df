package profile

import (
	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// Parse turns raw profile text into a structured Document. Malformed
// front matter degrades to empty metadata with the full input treated as
// body; the function itself never fails on content it merely cannot
// recognise.
func Parse(raw []byte) (*interfaces.Document, error) {
	return parseWithLogger(raw, logging.NoOp())
}

func parseWithLogger(raw []byte, logger interfaces.Logger) (*interfaces.Document, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDocument
	}

	meta, body, err := ParseFrontMatter(raw)
	if err != nil {
		logger.Warn("profile.frontmatter.malformed", "error", err)
	}

	doc := &interfaces.Document{
		Raw:      append([]byte(nil), raw...),
		Metadata: meta,
		Body:     body,
		Sections: ExtractSections(body),
	}
	return doc, nil
}

// ExtractSections segments body text and routes each canonical section to its
// field extractor.
func ExtractSections(body []byte) interfaces.Sections {
	var sections interfaces.Sections
	sections.Practicum1 = NewProject()
	sections.Practicum2 = NewProject()
	sections.Contact = NewContact()

	for _, raw := range SegmentBody(body) {
		switch raw.Key {
		case SectionAbout:
			sections.About = raw.Text
		case SectionSkills:
			sections.Skills = ExtractSkills(raw.Text)
		case SectionPracticum1:
			sections.Practicum1 = ExtractProject(raw.Text)
		case SectionPracticum2:
			sections.Practicum2 = ExtractProject(raw.Text)
		case SectionContact:
			sections.Contact = ExtractContact(raw.Text)
		case SectionExperience:
			sections.Experience = raw.Text
		case SectionAchievements:
			sections.Achievements = ExtractAchievements(raw.Text)
		case SectionUnclassified:
			sections.Unclassified = raw.Text
		}
	}
	return sections
}
