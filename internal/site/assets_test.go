package site

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStudentFile(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindStudentFilesAvatarPriority(t *testing.T) {
	dir := t.TempDir()
	writeStudentFile(t, dir, "avatar.png")
	writeStudentFile(t, dir, "avatar.jpg")
	writeStudentFile(t, dir, "avatar.webp")

	resolver := NewResolver("https://cdn.example.edu/raw/")
	files := resolver.FindStudentFiles(dir, "students", "jrivera008")

	want := "https://cdn.example.edu/raw/students/jrivera008/avatar.webp"
	if files.AvatarURL != want {
		t.Fatalf("avatar url = %q, want %q", files.AvatarURL, want)
	}
}

func TestFindStudentFilesCVPatterns(t *testing.T) {
	dir := t.TempDir()
	writeStudentFile(t, dir, "jrivera008_cv.pdf")
	writeStudentFile(t, dir, "resume.pdf")

	resolver := NewResolver("https://cdn.example.edu")
	files := resolver.FindStudentFiles(dir, "students", "jrivera008")

	want := "https://cdn.example.edu/students/jrivera008/jrivera008_cv.pdf"
	if files.CVURL != want {
		t.Fatalf("cv url = %q, want %q", files.CVURL, want)
	}
}

func TestFindStudentFilesCollections(t *testing.T) {
	dir := t.TempDir()
	writeStudentFile(t, dir, "reports/jrivera008_practicum1_report.pdf")
	writeStudentFile(t, dir, "reports/notes.txt")
	writeStudentFile(t, dir, "presentations/jrivera008_practicum1_slides.pdf")
	writeStudentFile(t, dir, "avatar.jpg")
	writeStudentFile(t, dir, "diagram.png")
	writeStudentFile(t, dir, "proposal.pdf")

	resolver := NewResolver("https://cdn.example.edu")
	files := resolver.FindStudentFiles(dir, "students", "jrivera008")

	if len(files.Reports) != 1 || files.Reports[0].Name != "jrivera008_practicum1_report.pdf" {
		t.Fatalf("reports = %+v", files.Reports)
	}
	if len(files.Presentations) != 1 {
		t.Fatalf("presentations = %+v", files.Presentations)
	}
	if len(files.PDFs) != 1 || files.PDFs[0].Name != "proposal.pdf" {
		t.Fatalf("root pdfs = %+v", files.PDFs)
	}
	if len(files.Images) != 1 || files.Images[0].Name != "diagram.png" {
		t.Fatalf("images should exclude the avatar, got %+v", files.Images)
	}
	if got := len(files.AllFiles()); got != 4 {
		t.Fatalf("AllFiles() returned %d refs, want 4", got)
	}
}

func TestProjectURLsMatchesByPracticumNumber(t *testing.T) {
	dir := t.TempDir()
	writeStudentFile(t, dir, "reports/jrivera008_practicum1_report.pdf")
	writeStudentFile(t, dir, "reports/jrivera008_practicum2_report.pdf")
	writeStudentFile(t, dir, "presentations/final_presentation.pdf")

	resolver := NewResolver("https://cdn.example.edu")
	files := resolver.FindStudentFiles(dir, "students", "jrivera008")

	p1 := files.ProjectURLs(true)
	if !filepathHasSuffix(p1.Report, "jrivera008_practicum1_report.pdf") {
		t.Fatalf("practicum 1 report = %q", p1.Report)
	}
	p2 := files.ProjectURLs(false)
	if !filepathHasSuffix(p2.Report, "jrivera008_practicum2_report.pdf") {
		t.Fatalf("practicum 2 report = %q", p2.Report)
	}

	// The generic presentation name serves both practicums.
	if !filepathHasSuffix(p1.Slides, "final_presentation.pdf") {
		t.Fatalf("practicum 1 slides = %q", p1.Slides)
	}
	if p1.Slides != p2.Slides {
		t.Fatalf("slides diverged: %q vs %q", p1.Slides, p2.Slides)
	}
}

func TestProjectURLsPlaceholderWhenUnmatched(t *testing.T) {
	dir := t.TempDir()
	writeStudentFile(t, dir, "reports/draft_outline.pdf")

	resolver := NewResolver("https://cdn.example.edu")
	files := resolver.FindStudentFiles(dir, "students", "jrivera008")

	urls := files.ProjectURLs(true)
	if urls.Report != "#" {
		t.Fatalf("unmatched report should fall back to placeholder, got %q", urls.Report)
	}
	if urls.Slides != "#" {
		t.Fatalf("missing slides should fall back to placeholder, got %q", urls.Slides)
	}
}

func TestFindStudentFilesEmptyDirectory(t *testing.T) {
	resolver := NewResolver("https://cdn.example.edu")
	files := resolver.FindStudentFiles(t.TempDir(), "students", "jrivera008")

	if files.AvatarURL != "" || files.CVURL != "" {
		t.Fatalf("expected no urls, got avatar=%q cv=%q", files.AvatarURL, files.CVURL)
	}
	if len(files.AllFiles()) != 0 {
		t.Fatalf("expected no files, got %+v", files.AllFiles())
	}
}

func filepathHasSuffix(url, name string) bool {
	return len(url) > len(name) && url[len(url)-len(name):] == name
}
