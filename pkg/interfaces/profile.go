package interfaces

import (
	"context"
	"time"
)

// Metadata holds the flat key-value pairs extracted from a profile's
// front-matter block. Values are plain strings with any quoting stripped.
type Metadata map[string]string

// Get returns the value for key, or fallback when the key is absent or blank.
func (m Metadata) Get(key, fallback string) string {
	if m == nil {
		return fallback
	}
	if value, ok := m[key]; ok && value != "" {
		return value
	}
	return fallback
}

// Document represents a single Markdown profile with parsed metadata and
// typed sections. The struct is shared between the interfaces package and
// internal implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Raw          []byte
	Metadata     Metadata
	Body         []byte
	Sections     Sections
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically
	// SHA-256) so sync workflows can detect changes without re-rendering
	// unchanged profiles.
	Checksum []byte
}

// Sections groups the typed records produced by the section extractors.
// Absent sections keep their zero values; the renderer substitutes default
// content rather than omitting page regions.
type Sections struct {
	About        string
	Skills       SkillSet
	Practicum1   Project
	Practicum2   Project
	Contact      Contact
	Experience   string
	Achievements []string
	// Unclassified accumulates body text under headings that match no
	// canonical section rule. It is preserved for diagnostics but never
	// rendered.
	Unclassified string
}

// SkillCategory pairs a category label with its ordered skill names.
type SkillCategory struct {
	Name  string
	Items []string
}

// SkillSet is the ordered list of skill categories parsed from a Skills
// section. Slice order follows document order so rendering stays
// deterministic.
type SkillSet struct {
	Categories []SkillCategory
}

// Empty reports whether no categories were parsed.
func (s SkillSet) Empty() bool { return len(s.Categories) == 0 }

// Project captures one practicum project section. Link fields default to the
// placeholder URL "#" until a recognised link line resolves them.
type Project struct {
	Title        string
	Tags         []string
	Abstract     string
	Achievements []string
	Technologies string
	GitHub       string
	Report       string
	Slides       string
	Demo         string
}

// Empty reports whether the section carried no usable project data.
func (p Project) Empty() bool { return p.Title == "" }

// Contact captures the contact section. Email defaults to empty; the link
// fields default to the placeholder URL "#".
type Contact struct {
	Email     string
	LinkedIn  string
	GitHub    string
	Portfolio string
}

// ProjectURLs holds the externally resolved artefact links for one practicum
// project (collaborators resolve these from local files or course summaries).
type ProjectURLs struct {
	GitHub string
	Report string
	Slides string
	Demo   string
}

// FileURLs carries every externally resolved URL a rendered page embeds.
type FileURLs struct {
	Avatar     string
	CV         string
	Practicum1 ProjectURLs
	Practicum2 ProjectURLs
}

// ProfileParser turns raw profile text into a structured Document.
type ProfileParser interface {
	Parse(raw []byte) (*Document, error)
}

// ProfileRenderer maps a parsed Document plus resolved file URLs onto a
// complete static HTML page. Implementations must be pure: identical inputs
// yield byte-identical output.
type ProfileRenderer interface {
	Render(ctx context.Context, doc *Document, urls FileURLs) ([]byte, error)
}

// LoadOptions fine-tunes how profiles are discovered on disk.
type LoadOptions struct {
	Pattern   string
	Recursive *bool
}

// ProfileService exposes the high-level profile workflows: loading documents
// from a directory tree, parsing raw text, and merging project updates back
// into existing profile text.
type ProfileService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Parse(raw []byte) (*Document, error)
	Merge(doc *Document, record Project, sectionKey string) ([]byte, error)
}
