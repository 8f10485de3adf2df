package profile

import (
	"regexp"
	"strings"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// PlaceholderURL is the sentinel marking a link a student has not supplied
// yet. The renderer disables the matching page control instead of omitting it.
const PlaceholderURL = "#"

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	emailPattern        = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.\w+`)
	linkedinURLPattern  = regexp.MustCompile(`https?://[^\s]*linkedin\.com[^\s]*`)
	githubURLPattern    = regexp.MustCompile(`https?://[^\s]*github\.com[^\s]*`)
	rawURLPattern       = regexp.MustCompile(`https?://[^\s]+`)
)

// ExtractSkills parses a Skills section into ordered categories. Only lines
// recognised as category markers (bold text ending in a colon) or bullet
// items following a marker contribute; anything before the first marker is
// discarded.
func ExtractSkills(text string) interfaces.SkillSet {
	var (
		set     interfaces.SkillSet
		current = -1
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, ":**"):
			name := strings.TrimSpace(line[2 : len(line)-3])
			set.Categories = append(set.Categories, interfaces.SkillCategory{Name: name})
			current = len(set.Categories) - 1
		case strings.HasPrefix(line, "- ") && current >= 0:
			item := strings.TrimSpace(line[2:])
			if item != "" {
				set.Categories[current].Items = append(set.Categories[current].Items, item)
			}
		}
	}
	return set
}

// projectField identifies which labelled field subsequent lines belong to
// while scanning a project section.
type projectField int

const (
	fieldNone projectField = iota
	fieldAbstract
	fieldAchievements
	fieldLinks
)

// NewProject returns a Project with every link field set to the placeholder.
func NewProject() interfaces.Project {
	return interfaces.Project{
		GitHub: PlaceholderURL,
		Report: PlaceholderURL,
		Slides: PlaceholderURL,
		Demo:   PlaceholderURL,
	}
}

// ExtractProject parses a practicum section into a structured record. Label
// prefixes are checked longest-first so "**Technologies Used:**" never falls
// through to "**Technologies:**"; bullet lines route to whichever labelled
// list is active, and plain lines extend the abstract until the next label.
func ExtractProject(text string) interfaces.Project {
	project := NewProject()
	current := fieldNone

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "**Title:**"):
			project.Title = strings.TrimSpace(line[len("**Title:**"):])
			current = fieldNone
		case strings.HasPrefix(line, "**Tags:**"):
			project.Tags = splitTags(line[len("**Tags:**"):])
			current = fieldNone
		case strings.HasPrefix(line, "**Abstract:**"):
			project.Abstract = strings.TrimSpace(line[len("**Abstract:**"):])
			current = fieldAbstract
		case strings.HasPrefix(line, "**Technologies Used:**"), strings.HasPrefix(line, "**Technologies:**"):
			if _, value, ok := strings.Cut(line, ":**"); ok {
				project.Technologies = strings.TrimSpace(value)
			}
			current = fieldNone
		case strings.HasPrefix(line, "**Key Achievements:**"):
			current = fieldAchievements
		case strings.HasPrefix(line, "**Links:**"):
			current = fieldLinks
		case strings.HasPrefix(line, "- "):
			item := strings.TrimSpace(line[2:])
			switch current {
			case fieldAchievements:
				if item != "" {
					project.Achievements = append(project.Achievements, item)
				}
			case fieldLinks:
				classifyProjectLink(&project, item)
			}
		case current == fieldAbstract && line != "" && !strings.HasPrefix(line, "**"):
			if project.Abstract != "" {
				project.Abstract += " " + line
			} else {
				project.Abstract = line
			}
		}
	}
	return project
}

// classifyProjectLink routes one Links bullet onto the matching URL field.
// The first keyword hit wins, so a single line cannot populate two fields.
func classifyProjectLink(project *interfaces.Project, text string) {
	lowered := strings.ToLower(text)
	url := func() string {
		if match := markdownLinkPattern.FindStringSubmatch(text); match != nil {
			return match[2]
		}
		return ""
	}

	switch {
	case strings.Contains(lowered, "github"):
		if u := url(); u != "" {
			project.GitHub = u
		}
	case strings.Contains(lowered, "report"):
		if u := url(); u != "" {
			project.Report = u
		}
	case strings.Contains(lowered, "slide"), strings.Contains(lowered, "presentation"):
		if u := url(); u != "" {
			project.Slides = u
		}
	case strings.Contains(lowered, "demo"):
		if u := url(); u != "" {
			project.Demo = u
		}
	}
}

func splitTags(raw string) []string {
	var tags []string
	for _, token := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(token); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NewContact returns a Contact with link fields set to the placeholder.
func NewContact() interfaces.Contact {
	return interfaces.Contact{
		LinkedIn:  PlaceholderURL,
		GitHub:    PlaceholderURL,
		Portfolio: PlaceholderURL,
	}
}

// ExtractContact parses a Contact section, tolerating both markdown-link and
// raw-URL formats for each field.
func ExtractContact(text string) interfaces.Contact {
	contact := NewContact()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lowered := strings.ToLower(line)

		switch {
		case strings.Contains(lowered, "email") && strings.Contains(line, "@"):
			if match := emailPattern.FindString(line); match != "" {
				contact.Email = match
			}
		case strings.Contains(lowered, "linkedin"):
			if url := matchDomainLink(line, "linkedin.com", linkedinURLPattern); url != "" {
				contact.LinkedIn = url
			}
		case strings.Contains(lowered, "github"):
			if url := matchDomainLink(line, "github.com", githubURLPattern); url != "" {
				contact.GitHub = url
			}
		case (strings.Contains(lowered, "portfolio") || strings.Contains(lowered, "website")) && strings.Contains(line, "http"):
			if match := markdownLinkPattern.FindStringSubmatch(line); match != nil {
				contact.Portfolio = match[2]
			} else if url := rawURLPattern.FindString(line); url != "" {
				contact.Portfolio = url
			}
		}
	}
	return contact
}

// matchDomainLink prefers a markdown link whose URL contains the domain and
// falls back to a raw URL spotted anywhere on the line.
func matchDomainLink(line, domain string, rawPattern *regexp.Regexp) string {
	if match := markdownLinkPattern.FindStringSubmatch(line); match != nil {
		if strings.Contains(match[2], domain) {
			return match[2]
		}
		return ""
	}
	return rawPattern.FindString(line)
}

// ExtractAchievements parses a standalone achievements/awards section into a
// flat bullet list.
func ExtractAchievements(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			if item := strings.TrimSpace(line[2:]); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
