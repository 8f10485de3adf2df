package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/campusfolio/go-portfolio/internal/profile"
	"github.com/campusfolio/go-portfolio/internal/summary"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// avatarExtensions is the lookup priority for profile photos.
var avatarExtensions = []string{"webp", "jpg", "jpeg", "png"}

// StudentFiles is everything discovered in one student's directory, with URLs
// already pointing at the published location.
type StudentFiles struct {
	AvatarURL     string
	CVURL         string
	Reports       []summary.FileRef
	Presentations []summary.FileRef
	PDFs          []summary.FileRef
	Images        []summary.FileRef
}

// Resolver maps a student's on-disk files onto published URLs. baseURL is the
// raw-content root the site serves student assets from.
type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (r *Resolver) studentBaseURL(courseFolder, username string) string {
	return fmt.Sprintf("%s/%s/%s", r.baseURL, courseFolder, username)
}

// FindStudentFiles scans one student directory. Missing directories and
// unreadable entries are simply absent from the result; discovery never
// fails a sync.
func (r *Resolver) FindStudentFiles(dir, courseFolder, username string) *StudentFiles {
	base := r.studentBaseURL(courseFolder, username)
	files := &StudentFiles{}

	for _, ext := range avatarExtensions {
		name := "avatar." + ext
		if fileExists(filepath.Join(dir, name)) {
			files.AvatarURL = base + "/" + name
			break
		}
	}

	cvPatterns := []string{"cv.pdf", username + "_cv.pdf", "resume.pdf", username + "_resume.pdf"}
	for _, name := range cvPatterns {
		if fileExists(filepath.Join(dir, name)) {
			files.CVURL = base + "/" + name
			break
		}
	}

	files.Reports = listPDFs(filepath.Join(dir, "reports"), base+"/reports")
	files.Presentations = listPDFs(filepath.Join(dir, "presentations"), base+"/presentations")
	files.PDFs = listPDFs(dir, base)

	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, "avatar") {
				continue
			}
			switch strings.ToLower(filepath.Ext(name)) {
			case ".jpg", ".jpeg", ".png", ".webp":
				files.Images = append(files.Images, summary.FileRef{Name: name, URL: base + "/" + name})
			}
		}
	}

	return files
}

// ProjectURLs resolves report and slides links for one practicum by filename
// convention: a practicum-numbered name wins, then the generic report/slides
// names.
func (f *StudentFiles) ProjectURLs(practicum1 bool) interfaces.ProjectURLs {
	num := practicumNumber(practicum1)
	return interfaces.ProjectURLs{
		Report: matchFileRef(f.Reports, reportKeywords(num)),
		Slides: matchFileRef(f.Presentations, slideKeywords(num)),
	}
}

func practicumNumber(practicum1 bool) string {
	if practicum1 {
		return "1"
	}
	return "2"
}

func reportKeywords(num string) []string {
	return []string{"practicum" + num, "practicum_" + num, "practicum " + num, "report"}
}

func slideKeywords(num string) []string {
	return []string{"practicum" + num, "practicum_" + num, "practicum " + num, "slides", "presentation"}
}

// AllFiles flattens the discovered artefacts for the course summary entry.
func (f *StudentFiles) AllFiles() []summary.FileRef {
	refs := make([]summary.FileRef, 0, len(f.Reports)+len(f.Presentations)+len(f.PDFs)+len(f.Images))
	refs = append(refs, f.Reports...)
	refs = append(refs, f.Presentations...)
	refs = append(refs, f.PDFs...)
	refs = append(refs, f.Images...)
	return refs
}

func matchFileRef(refs []summary.FileRef, keywords []string) string {
	for _, keyword := range keywords {
		for _, ref := range refs {
			if strings.Contains(strings.ToLower(ref.Name), keyword) {
				return ref.URL
			}
		}
	}
	return profile.PlaceholderURL
}

func listPDFs(dir, baseURL string) []summary.FileRef {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var refs []summary.FileRef
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		refs = append(refs, summary.FileRef{Name: entry.Name(), URL: baseURL + "/" + entry.Name()})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
