package profile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const (
	defaultMajor      = "Data Science"
	defaultDegree     = "Master of Science in Data Science"
	defaultUniversity = "Regis University"
)

// TemplateData carries everything needed to synthesise a fresh profile.md.
type TemplateData struct {
	Name       string
	FirstName  string
	LastName   string
	Email      string
	Username   string
	GitHub     string
	Semester   string
	Graduation string
	Major      string
	Degree     string
	University string
	// Project seeds the practicum section; Key selects which practicum.
	Project interfaces.Project
	Key     SectionKey
}

// templateHeader serialises through yaml.v3 so field order in the generated
// header block is stable.
type templateHeader struct {
	Name       string `yaml:"name"`
	FirstName  string `yaml:"firstName"`
	LastName   string `yaml:"lastName"`
	Email      string `yaml:"email"`
	Username   string `yaml:"username"`
	GitHub     string `yaml:"github"`
	LinkedIn   string `yaml:"linkedin"`
	Course     string `yaml:"course"`
	Semester   string `yaml:"semester"`
	Graduation string `yaml:"graduation"`
	Major      string `yaml:"major"`
	Degree     string `yaml:"degree"`
	University string `yaml:"university"`
}

// RenderTemplate builds the complete Markdown text of a new profile: header
// block, About/Skills scaffolds, the seeded practicum section, and Contact.
// Students replace the placeholder prose; the section and label layout is the
// one the extractors parse.
func RenderTemplate(data TemplateData) []byte {
	data = applyTemplateDefaults(data)

	header := templateHeader{
		Name:       data.Name,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Email:      data.Email,
		Username:   data.Username,
		GitHub:     data.Username,
		LinkedIn:   data.Username,
		Course:     courseCodeFor(data.Key),
		Semester:   data.Semester,
		Graduation: data.Graduation,
		Major:      data.Major,
		Degree:     data.Degree,
		University: data.University,
	}

	var b strings.Builder
	b.WriteString(frontMatterDelimiter + "\n")
	if encoded, err := yaml.Marshal(header); err == nil {
		b.Write(encoded)
	}
	b.WriteString(frontMatterDelimiter + "\n\n")

	numeral := "I"
	if data.Key == SectionPracticum2 {
		numeral = "II"
	}

	b.WriteString("## About Me\n\n")
	fmt.Fprintf(&b, "I am a dedicated %s graduate student at %s, currently completing my Practicum %s experience. My focus is on applying data science techniques to solve real-world problems and gain practical experience in the field.\n\n",
		data.Major, data.University, numeral)
	b.WriteString("*Please update this section with your personal background, interests, and career goals.*\n\n")

	b.WriteString("## Skills\n\n")
	b.WriteString("**Programming Languages:**\n- Python\n- R\n- SQL\n\n")
	b.WriteString("**Data Science Tools:**\n- Pandas, NumPy\n- Matplotlib, Seaborn\n- Scikit-learn\n\n")
	b.WriteString("**Technologies:**\n- Jupyter Notebooks\n- Git/GitHub\n\n")
	b.WriteString("*Please update this section with your actual skills and proficiency levels.*\n\n")

	for _, line := range RenderProjectSection(data.Project, data.Key) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## Contact\n\n")
	fmt.Fprintf(&b, "**Email:** %s\n\n", data.Email)
	fmt.Fprintf(&b, "**LinkedIn:** [Connect with me](https://linkedin.com/in/%s)\n\n", data.Username)
	fmt.Fprintf(&b, "**GitHub:** [View my repositories](https://github.com/%s)\n\n", data.Username)
	b.WriteString("**Portfolio:** [Visit my portfolio](#)\n\n")
	b.WriteString("*Please update the links above with your actual social media and portfolio URLs.*\n")

	return []byte(b.String())
}

// NewProfileFromRecord synthesises a document from whatever metadata survives
// plus the incoming project record. Used by the merge engine when there is no
// existing document to update.
func NewProfileFromRecord(meta interfaces.Metadata, record interfaces.Project, key SectionKey, semester string) []byte {
	record = seedProjectDefaults(record)

	return RenderTemplate(TemplateData{
		Name:      meta.Get("name", "Student Name"),
		FirstName: meta.Get("firstName", ""),
		LastName:  meta.Get("lastName", ""),
		Email:     meta.Get("email", ""),
		Username:  meta.Get("username", "student"),
		Semester:  semester,
		Project:   record,
		Key:       key,
	})
}

// seedProjectDefaults fills content-generation conveniences: keyword tags and
// a default abstract sentence derived from the lowercased title.
func seedProjectDefaults(record interfaces.Project) interfaces.Project {
	if len(record.Tags) == 0 && record.Title != "" {
		record.Tags = GenerateTags(record.Title)
	}
	if strings.TrimSpace(record.Abstract) == "" && record.Title != "" {
		record.Abstract = fmt.Sprintf("This project focuses on %s. Please update this section with a detailed description of your project, methodology, and key findings.",
			strings.ToLower(record.Title))
	}
	return record
}

func applyTemplateDefaults(data TemplateData) TemplateData {
	if data.Major == "" {
		data.Major = defaultMajor
	}
	if data.Degree == "" {
		data.Degree = defaultDegree
	}
	if data.University == "" {
		data.University = defaultUniversity
	}
	if data.Key == "" {
		data.Key = SectionPracticum1
	}
	if data.Name == "" {
		data.Name = strings.TrimSpace(data.FirstName + " " + data.LastName)
	}
	data.Project = seedProjectDefaults(data.Project)
	return data
}
