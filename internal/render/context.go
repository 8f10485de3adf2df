package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"unicode"

	"github.com/campusfolio/go-portfolio/internal/profile"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const (
	defaultStudentName = "Student Name"
	defaultTagline     = "Data Science Graduate Student"
	defaultCourse      = "MSDS Practicum"
	defaultUniversity  = "Regis University"

	defaultAboutHTML = `<p class="text-lg leading-relaxed mb-4">I am a dedicated Data Science student at Regis University, currently completing my practicum experience. Please edit your profile.md file to add information about yourself.</p>`

	defaultAbstract = "Please add project abstract in your profile.md file."

	// Skills categories a page shows per card; overflow is elided.
	skillsPerCard = 3
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// pageContext is the fully resolved input the page template renders from.
// Every field is computed before template execution so the template itself
// stays logic-free.
type pageContext struct {
	Name        string
	Initial     string
	Tagline     string
	Affiliation string
	AvatarURL   string
	Year        string

	CV linkState

	Hero struct {
		GitHub   linkState
		LinkedIn linkState
	}

	AboutHTML template.HTML

	Skills []skillCard

	Projects []projectCard

	Contact contactBlock
}

// linkState carries a URL plus whether the matching control is live. Controls
// bound to the placeholder URL render greyed out with no target.
type linkState struct {
	URL     string
	Enabled bool
}

func newLinkState(url string) linkState {
	url = strings.TrimSpace(url)
	if url == "" {
		url = profile.PlaceholderURL
	}
	return linkState{URL: url, Enabled: url != profile.PlaceholderURL}
}

// resolve prefers the profile-supplied URL and falls back to the externally
// resolved one when the profile still carries the placeholder.
func resolveLink(fromProfile, resolved string) linkState {
	state := newLinkState(fromProfile)
	if !state.Enabled {
		state = newLinkState(resolved)
	}
	return state
}

type skillCard struct {
	Name  string
	Items string
	Icon  string
	Color string
}

type tagBadge struct {
	Label string
	Color string
}

type projectCard struct {
	CourseLabel  string
	Gradient     string
	Title        string
	Tags         []tagBadge
	Abstract     string
	Achievements []string
	GitHub       linkState
	Report       linkState
	Slides       linkState
	Demo         linkState
}

type contactEntry struct {
	linkState
	Label  string
	Prompt string
}

type contactBlock struct {
	Email     string
	HasEmail  bool
	LinkedIn  contactEntry
	GitHub    contactEntry
	Portfolio contactEntry
}

// skillStyles maps well-known category labels onto the icon and colour pair
// their card uses. Unknown categories get the generic star.
var skillStyles = map[string]struct {
	icon  string
	color string
}{
	"Programming Languages": {"fas fa-code", "blue"},
	"Tools & Frameworks":    {"fas fa-tools", "green"},
	"Databases":             {"fas fa-database", "purple"},
	"Machine Learning":      {"fas fa-brain", "orange"},
	"Web Development":       {"fas fa-laptop-code", "indigo"},
	"Data Science":          {"fas fa-chart-bar", "red"},
}

// defaultSkillCards is the canned grid rendered when a profile has no parsed
// skill categories.
var defaultSkillCards = []skillCard{
	{Name: "Programming", Items: "Python, R, SQL", Icon: "fas fa-code", Color: "blue"},
	{Name: "Data Analysis", Items: "Pandas, NumPy", Icon: "fas fa-laptop-code", Color: "green"},
	{Name: "Visualization", Items: "Matplotlib, Seaborn", Icon: "fas fa-chart-bar", Color: "purple"},
	{Name: "Machine Learning", Items: "Scikit-learn", Icon: "fas fa-brain", Color: "orange"},
}

func (r *Renderer) buildContext(doc *interfaces.Document, urls interfaces.FileURLs) (*pageContext, error) {
	name := doc.Metadata.Get("name", defaultStudentName)

	page := &pageContext{
		Name:        name,
		Initial:     nameInitial(name),
		Tagline:     defaultTagline,
		Affiliation: defaultUniversity + " | " + doc.Metadata.Get("course", defaultCourse),
		Year:        pageYear(doc.Metadata),
	}

	page.AvatarURL = urls.Avatar
	if page.AvatarURL == "" {
		page.AvatarURL = placeholderAvatarURL(page.Initial)
	}
	page.CV = newLinkState(urls.CV)
	page.Hero.GitHub = newLinkState(doc.Sections.Contact.GitHub)
	page.Hero.LinkedIn = newLinkState(doc.Sections.Contact.LinkedIn)

	about, err := r.aboutHTML(doc.Sections.About)
	if err != nil {
		return nil, err
	}
	page.AboutHTML = about

	page.Skills = skillCards(doc.Sections.Skills)

	if !doc.Sections.Practicum1.Empty() {
		page.Projects = append(page.Projects, projectCardFor(doc.Sections.Practicum1, "MSDS 692 - Practicum I", "from-primary", urls.Practicum1))
	}
	if !doc.Sections.Practicum2.Empty() {
		page.Projects = append(page.Projects, projectCardFor(doc.Sections.Practicum2, "MSDS 696 - Practicum II", "from-secondary", urls.Practicum2))
	}

	page.Contact = contactBlockFor(doc.Sections.Contact, doc.Metadata)

	return page, nil
}

func (r *Renderer) aboutHTML(about string) (template.HTML, error) {
	if strings.TrimSpace(about) == "" {
		return defaultAboutHTML, nil
	}
	html, err := r.markdown.Render([]byte(about))
	if err != nil {
		return "", err
	}
	return template.HTML(html), nil
}

func skillCards(set interfaces.SkillSet) []skillCard {
	if set.Empty() {
		return defaultSkillCards
	}

	cards := make([]skillCard, 0, len(set.Categories))
	for _, category := range set.Categories {
		style, ok := skillStyles[category.Name]
		if !ok {
			style.icon, style.color = "fas fa-star", "gray"
		}
		items := category.Items
		if len(items) > skillsPerCard {
			items = items[:skillsPerCard]
		}
		cards = append(cards, skillCard{
			Name:  category.Name,
			Items: strings.Join(items, ", "),
			Icon:  style.icon,
			Color: style.color,
		})
	}
	return cards
}

func projectCardFor(project interfaces.Project, courseLabel, gradient string, urls interfaces.ProjectURLs) projectCard {
	card := projectCard{
		CourseLabel:  courseLabel,
		Gradient:     gradient,
		Title:        project.Title,
		Abstract:     project.Abstract,
		Achievements: project.Achievements,
		GitHub:       resolveLink(project.GitHub, urls.GitHub),
		Report:       resolveLink(project.Report, urls.Report),
		Slides:       resolveLink(project.Slides, urls.Slides),
		Demo:         resolveLink(project.Demo, urls.Demo),
	}
	if strings.TrimSpace(card.Abstract) == "" {
		card.Abstract = defaultAbstract
	}
	for _, tag := range project.Tags {
		card.Tags = append(card.Tags, tagBadge{Label: tag, Color: tagColor(tag)})
	}
	return card
}

func tagColor(tag string) string {
	switch {
	case strings.Contains(tag, "Python"):
		return "blue"
	case strings.Contains(tag, "Data"):
		return "green"
	default:
		return "purple"
	}
}

func contactBlockFor(contact interfaces.Contact, meta interfaces.Metadata) contactBlock {
	email := contact.Email
	if email == "" {
		email = meta.Get("email", "")
	}

	block := contactBlock{
		Email:    email,
		HasEmail: email != "",
	}
	block.LinkedIn = contactEntry{
		linkState: newLinkState(contact.LinkedIn),
		Label:     "LinkedIn Profile",
		Prompt:    "Add LinkedIn in profile.md",
	}
	block.GitHub = contactEntry{
		linkState: newLinkState(contact.GitHub),
		Label:     "GitHub Profile",
		Prompt:    "Add GitHub in profile.md",
	}
	block.Portfolio = contactEntry{
		linkState: newLinkState(contact.Portfolio),
		Label:     "Personal Website",
		Prompt:    "Add portfolio in profile.md",
	}
	return block
}

func nameInitial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "S"
}

func placeholderAvatarURL(initial string) string {
	return fmt.Sprintf("https://via.placeholder.com/200x200/1e40af/ffffff?text=%s", initial)
}

// pageYear derives the footer year from the semester metadata so rendering
// stays a pure function of its inputs. Headers without a recognisable year
// fall back to a fixed label.
func pageYear(meta interfaces.Metadata) string {
	for _, key := range []string{"semester", "graduation"} {
		if match := yearPattern.FindString(meta.Get(key, "")); match != "" {
			return match
		}
	}
	return "2025"
}
