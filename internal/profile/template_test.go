package profile

import (
	"strings"
	"testing"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate(TemplateData{
		Name:       "Jordan Rivera",
		FirstName:  "Jordan",
		LastName:   "Rivera",
		Email:      "jrivera@regis.edu",
		Username:   "jrivera",
		Semester:   "Summer 2025",
		Graduation: "December 2025",
		Project:    interfaces.Project{Title: "Customer Churn Prediction"},
		Key:        SectionPracticum1,
	})
	text := string(out)

	if !strings.HasPrefix(text, "---\n") {
		t.Fatalf("template missing header block:\n%s", text)
	}
	if !strings.Contains(text, "name: Jordan Rivera") {
		t.Fatalf("name missing from header:\n%s", text)
	}
	if !strings.Contains(text, "university: Regis University") {
		t.Fatalf("university default missing:\n%s", text)
	}
	if !strings.Contains(text, "## About Me") || !strings.Contains(text, "## Skills") || !strings.Contains(text, "## Contact") {
		t.Fatalf("scaffold sections missing:\n%s", text)
	}
	if !strings.Contains(text, "## MSDS 692 - Practicum I") {
		t.Fatalf("project section missing:\n%s", text)
	}
	if !strings.Contains(text, "This project focuses on customer churn prediction.") {
		t.Fatalf("default abstract missing:\n%s", text)
	}
	if !strings.Contains(text, "**Tags:** Data Science, Python, Analytics") {
		t.Fatalf("generated default tags missing:\n%s", text)
	}
	if !strings.Contains(text, "https://github.com/jrivera") {
		t.Fatalf("github contact link missing:\n%s", text)
	}
}

func TestRenderTemplateParsesBack(t *testing.T) {
	out := RenderTemplate(TemplateData{
		Name:     "Sam Lee",
		Email:    "slee@regis.edu",
		Username: "slee",
		Semester: "Fall 2025",
		Project:  interfaces.Project{Title: "NLP Topic Explorer"},
		Key:      SectionPracticum2,
	})

	doc, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse generated template: %v", err)
	}
	if got := doc.Metadata.Get("course", ""); got != "MSDS 696" {
		t.Fatalf("course metadata mismatch: %q", got)
	}
	if got := doc.Metadata.Get("semester", ""); got != "Fall 2025" {
		t.Fatalf("semester metadata mismatch: %q", got)
	}
	if doc.Sections.Practicum2.Title != "NLP Topic Explorer" {
		t.Fatalf("practicum2 title mismatch: %q", doc.Sections.Practicum2.Title)
	}
	if doc.Sections.Skills.Empty() {
		t.Fatalf("skill scaffold should parse into categories")
	}
	if doc.Sections.Contact.Email != "slee@regis.edu" {
		t.Fatalf("contact email mismatch: %q", doc.Sections.Contact.Email)
	}
}

func TestNewProfileFromRecordDefaults(t *testing.T) {
	out := NewProfileFromRecord(nil, interfaces.Project{Title: "Something"}, SectionPracticum1, "Summer 2025")
	text := string(out)

	if !strings.Contains(text, "name: Student Name") {
		t.Fatalf("name fallback missing:\n%s", text)
	}
	if !strings.Contains(text, "username: student") {
		t.Fatalf("username fallback missing:\n%s", text)
	}
}

func TestApplyTemplateDefaultsBuildsName(t *testing.T) {
	data := applyTemplateDefaults(TemplateData{FirstName: "Sam", LastName: "Lee"})
	if data.Name != "Sam Lee" {
		t.Fatalf("expected composed name, got %q", data.Name)
	}
	if data.Key != SectionPracticum1 {
		t.Fatalf("expected practicum1 default, got %q", data.Key)
	}
}
