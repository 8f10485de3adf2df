package profile

import (
	"testing"
)

func TestExtractSkills(t *testing.T) {
	text := "Some intro that is ignored.\n\n" +
		"**Programming Languages:**\n- Python\n- SQL\n\n" +
		"**Machine Learning:**\n- Scikit-learn\n- XGBoost\n"

	set := ExtractSkills(text)
	if len(set.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(set.Categories))
	}
	if set.Categories[0].Name != "Programming Languages" {
		t.Fatalf("category name mismatch: %q", set.Categories[0].Name)
	}
	if len(set.Categories[0].Items) != 2 || set.Categories[0].Items[1] != "SQL" {
		t.Fatalf("category items mismatch: %#v", set.Categories[0].Items)
	}
	if set.Categories[1].Name != "Machine Learning" {
		t.Fatalf("second category mismatch: %q", set.Categories[1].Name)
	}
}

func TestExtractSkillsBulletsBeforeCategory(t *testing.T) {
	set := ExtractSkills("- Orphan bullet\n\n**Tools:**\n- Git\n")
	if len(set.Categories) != 1 {
		t.Fatalf("expected 1 category, got %#v", set.Categories)
	}
	if len(set.Categories[0].Items) != 1 || set.Categories[0].Items[0] != "Git" {
		t.Fatalf("orphan bullet should be dropped: %#v", set.Categories[0].Items)
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	if set := ExtractSkills("Just prose, no markers."); !set.Empty() {
		t.Fatalf("expected empty skill set, got %#v", set)
	}
}

func TestExtractProject(t *testing.T) {
	text := "**Title:** Customer Churn Prediction\n\n" +
		"**Tags:** Machine Learning, Classification, Python\n\n" +
		"**Abstract:** Built a churn model for a telecom dataset.\n" +
		"Feature engineering doubled recall over the baseline.\n\n" +
		"**Key Achievements:**\n- 0.91 AUC on the held-out set\n- Deployed a scoring notebook\n\n" +
		"**Technologies Used:** Python, Pandas, Scikit-learn\n\n" +
		"**Links:**\n" +
		"- GitHub Repository: [View Code](https://github.com/jrivera/churn)\n" +
		"- Project Report: [Download Report](https://example.com/churn.pdf)\n" +
		"- Presentation Slides: [View Slides](https://example.com/slides)\n" +
		"- Live Demo: [Open Demo](https://demo.example.com)\n"

	project := ExtractProject(text)
	if project.Title != "Customer Churn Prediction" {
		t.Fatalf("title mismatch: %q", project.Title)
	}
	if len(project.Tags) != 3 || project.Tags[1] != "Classification" {
		t.Fatalf("tags mismatch: %#v", project.Tags)
	}
	wantAbstract := "Built a churn model for a telecom dataset. Feature engineering doubled recall over the baseline."
	if project.Abstract != wantAbstract {
		t.Fatalf("abstract continuation not joined: %q", project.Abstract)
	}
	if len(project.Achievements) != 2 {
		t.Fatalf("achievements mismatch: %#v", project.Achievements)
	}
	if project.Technologies != "Python, Pandas, Scikit-learn" {
		t.Fatalf("technologies mismatch: %q", project.Technologies)
	}
	if project.GitHub != "https://github.com/jrivera/churn" {
		t.Fatalf("github link mismatch: %q", project.GitHub)
	}
	if project.Report != "https://example.com/churn.pdf" {
		t.Fatalf("report link mismatch: %q", project.Report)
	}
	if project.Slides != "https://example.com/slides" {
		t.Fatalf("slides link mismatch: %q", project.Slides)
	}
	if project.Demo != "https://demo.example.com" {
		t.Fatalf("demo link mismatch: %q", project.Demo)
	}
}

// "**Technologies:**" is accepted as a shorthand for "**Technologies Used:**".
func TestExtractProjectTechnologiesShorthand(t *testing.T) {
	project := ExtractProject("**Title:** X\n\n**Technologies:** Go, SQLite\n")
	if project.Technologies != "Go, SQLite" {
		t.Fatalf("technologies mismatch: %q", project.Technologies)
	}
}

func TestExtractProjectMissingLinksKeepPlaceholder(t *testing.T) {
	project := ExtractProject("**Title:** Minimal\n\n**Abstract:** Short.\n")
	if project.GitHub != PlaceholderURL || project.Report != PlaceholderURL ||
		project.Slides != PlaceholderURL || project.Demo != PlaceholderURL {
		t.Fatalf("expected placeholder links, got %#v", project)
	}
}

func TestExtractProjectEmptyAbstract(t *testing.T) {
	project := ExtractProject("**Title:** X\n\n**Abstract:**\n\n**Technologies Used:** Go\n")
	if project.Abstract != "" {
		t.Fatalf("abstract should stay empty, got %q", project.Abstract)
	}
	if project.Technologies != "Go" {
		t.Fatalf("technologies mismatch: %q", project.Technologies)
	}
}

func TestExtractProjectEmptySection(t *testing.T) {
	project := ExtractProject("No labels at all, just prose.")
	if !project.Empty() {
		t.Fatalf("expected empty project, got %#v", project)
	}
}

// A "presentation" keyword routes to the slides field, and a link line with
// no markdown URL leaves the placeholder untouched.
func TestClassifyProjectLink(t *testing.T) {
	project := NewProject()
	classifyProjectLink(&project, "Presentation deck: [deck](https://example.com/deck)")
	if project.Slides != "https://example.com/deck" {
		t.Fatalf("presentation keyword should fill slides: %q", project.Slides)
	}

	classifyProjectLink(&project, "GitHub Repository: coming soon")
	if project.GitHub != PlaceholderURL {
		t.Fatalf("missing URL should keep placeholder: %q", project.GitHub)
	}
}

func TestExtractContact(t *testing.T) {
	text := "**Email:** jrivera@regis.edu\n\n" +
		"**LinkedIn:** [Connect with me](https://linkedin.com/in/jordan-rivera)\n\n" +
		"**GitHub:** https://github.com/jrivera\n\n" +
		"**Portfolio:** [Visit my portfolio](https://jrivera.dev)\n"

	contact := ExtractContact(text)
	if contact.Email != "jrivera@regis.edu" {
		t.Fatalf("email mismatch: %q", contact.Email)
	}
	if contact.LinkedIn != "https://linkedin.com/in/jordan-rivera" {
		t.Fatalf("linkedin mismatch: %q", contact.LinkedIn)
	}
	if contact.GitHub != "https://github.com/jrivera" {
		t.Fatalf("raw github URL should be accepted: %q", contact.GitHub)
	}
	if contact.Portfolio != "https://jrivera.dev" {
		t.Fatalf("portfolio mismatch: %q", contact.Portfolio)
	}
}

func TestExtractContactDomainMismatch(t *testing.T) {
	// A LinkedIn line whose markdown link points elsewhere is rejected.
	contact := ExtractContact("**LinkedIn:** [profile](https://example.com/me)\n")
	if contact.LinkedIn != PlaceholderURL {
		t.Fatalf("expected placeholder for mismatched domain, got %q", contact.LinkedIn)
	}
}

func TestExtractContactEmpty(t *testing.T) {
	contact := ExtractContact("Reach out any time!")
	if contact.Email != "" || contact.LinkedIn != PlaceholderURL ||
		contact.GitHub != PlaceholderURL || contact.Portfolio != PlaceholderURL {
		t.Fatalf("expected defaults, got %#v", contact)
	}
}

func TestExtractAchievements(t *testing.T) {
	items := ExtractAchievements("Intro line.\n- Dean's list\n- Hackathon finalist\n-   \n")
	if len(items) != 2 || items[0] != "Dean's list" || items[1] != "Hackathon finalist" {
		t.Fatalf("achievements mismatch: %#v", items)
	}
}

func TestGenerateTags(t *testing.T) {
	tags := GenerateTags("Machine Learning for Time Series Forecasting in Python")
	want := []string{"Machine Learning", "Python", "Time Series Analysis", "Forecasting"}
	if len(tags) != len(want) {
		t.Fatalf("tags mismatch: %#v", tags)
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Fatalf("tag %d: expected %q, got %q (all: %#v)", i, tag, tags[i], tags)
		}
	}
}

func TestGenerateTagsDefaults(t *testing.T) {
	tags := GenerateTags("Untitled Effort")
	if len(tags) != 3 || tags[0] != "Data Science" {
		t.Fatalf("expected default tags, got %#v", tags)
	}
}

func TestGenerateTagsCap(t *testing.T) {
	title := "Deep Learning Neural Network Classification Regression Clustering Forecasting"
	if tags := GenerateTags(title); len(tags) != maxGeneratedTags {
		t.Fatalf("expected %d tags, got %#v", maxGeneratedTags, tags)
	}
}
