package summary

// The JSON shapes here feed the static site pipeline; field names are part of
// that contract and must stay camelCase.

// CourseMeta describes the course offering a summary file covers.
type CourseMeta struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Semester    string `json:"semester"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// UniversityMeta is the fixed institution block embedded in every summary.
type UniversityMeta struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// FileRef points at one uploaded artefact (report, slide deck, image).
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StudentEntry is one student's row in a course summary.
type StudentEntry struct {
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Semester    string    `json:"semester"`
	Course      string    `json:"course"`
	ProfilePath string    `json:"profilePath"`
	ProfilePage string    `json:"profilePage,omitempty"`
	AvatarPath  string    `json:"avatarPath,omitempty"`
	Files       []FileRef `json:"files"`
}

// Statistics aggregates counts for the site's course header.
type Statistics struct {
	TotalStudents int    `json:"totalStudents"`
	TotalProjects int    `json:"totalProjects"`
	LastUpdated   string `json:"lastUpdated"`
}

// RunMeta records provenance for one sync run.
type RunMeta struct {
	DataSource string `json:"dataSource"`
	SyncedAt   string `json:"syncedAt"`
	SyncRunID  string `json:"syncRunId"`
	Version    string `json:"version"`
}

// CourseSummary is the complete per-course JSON document.
type CourseSummary struct {
	Course     CourseMeta     `json:"course"`
	University UniversityMeta `json:"university"`
	Students   []StudentEntry `json:"students"`
	Spotlight  []StudentEntry `json:"spotlight"`
	Statistics Statistics     `json:"statistics"`
	Metadata   RunMeta        `json:"metadata"`
}

// DefaultUniversity is the institution block stamped into every summary.
var DefaultUniversity = UniversityMeta{
	Name:    "Regis University",
	Phone:   "(800) 388-2366",
	Address: "3333 Regis Blvd, Denver, CO 80221",
	Website: "https://www.regis.edu",
}
