package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/campusfolio/go-portfolio/internal/profile"
	"github.com/campusfolio/go-portfolio/internal/summary"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// summaryIndex maps usernames onto the file references recorded by a previous
// publish of one course summary.
type summaryIndex map[string][]summary.FileRef

// loadSummaryIndex reads the course summary written by an earlier run. A
// missing or unreadable summary yields an empty index, which makes every
// lookup fall through to local file detection.
func loadSummaryIndex(path string) summaryIndex {
	raw, err := os.ReadFile(path)
	if err != nil {
		return summaryIndex{}
	}
	var doc summary.CourseSummary
	if err := json.Unmarshal(raw, &doc); err != nil {
		return summaryIndex{}
	}
	index := make(summaryIndex, len(doc.Students))
	for _, student := range doc.Students {
		index[student.Username] = student.Files
	}
	return index
}

// projectURLs resolves one student's practicum links against the previously
// published summary first; only URLs the summary does not carry fall back to
// the freshly detected local files.
func (idx summaryIndex) projectURLs(username string, practicum1 bool, local interfaces.ProjectURLs) interfaces.ProjectURLs {
	prior, ok := idx[username]
	if !ok || len(prior) == 0 {
		return local
	}

	// The summary records one flat file list per student, so refs are split
	// by kind before the practicum-number keywords are applied. Otherwise a
	// numbered report would satisfy the slides lookup as well.
	var reports, slides []summary.FileRef
	for _, ref := range prior {
		name := strings.ToLower(ref.Name)
		switch {
		case strings.Contains(name, "slides"), strings.Contains(name, "presentation"):
			slides = append(slides, ref)
		case strings.Contains(name, "report"):
			reports = append(reports, ref)
		}
	}

	num := practicumNumber(practicum1)
	if report := matchFileRef(reports, reportKeywords(num)); report != profile.PlaceholderURL {
		local.Report = report
	}
	if slideURL := matchFileRef(slides, slideKeywords(num)); slideURL != profile.PlaceholderURL {
		local.Slides = slideURL
	}
	return local
}
