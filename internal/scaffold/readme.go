package scaffold

import (
	"fmt"
	"strings"

	"github.com/campusfolio/go-portfolio/internal/roster"
)

// readmeContent generates the per-student instructions file. Unlike
// profile.md this is regenerated on every scaffold run.
func (s *Service) readmeContent(student roster.Student, course roster.CourseInfo) []byte {
	numeral := strings.ToLower(course.PracticumNumeral())

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - %s Portfolio\n\n", student.Name, course.CourseNumber())

	b.WriteString("## Folder Structure\n\n```\n")
	fmt.Fprintf(&b, "%s/\n", student.Username)
	b.WriteString("├── profile.md          # Your profile page content (edit this!)\n")
	b.WriteString("├── avatar.jpg          # Your profile photo\n")
	b.WriteString("├── reports/\n")
	fmt.Fprintf(&b, "│   └── %s_practicum%s_report.pdf\n", student.Username, numeral)
	b.WriteString("├── presentations/\n")
	fmt.Fprintf(&b, "│   └── %s_practicum%s_slides.pdf\n", student.Username, numeral)
	b.WriteString("└── assets/\n    └── (additional files)\n```\n\n")

	b.WriteString("## Getting Started\n\n")
	b.WriteString("1. **Edit your profile.md** - Update with your actual information\n")
	b.WriteString("2. **Upload your avatar** - Add `avatar.jpg` (or `avatar.png`, `avatar.webp`)\n")
	b.WriteString("3. **Upload your report** - Add PDF to `reports/` folder\n")
	b.WriteString("4. **Upload your presentation** - Add PDF to `presentations/` folder\n")
	b.WriteString("5. **Add any additional assets** - Use `assets/` folder for extra files\n\n")

	b.WriteString("## Required Files\n\n")
	b.WriteString("### Profile Photo\n")
	b.WriteString("- **File name:** `avatar.jpg`, `avatar.png`, or `avatar.webp`\n")
	b.WriteString("- **Size:** Recommended 400x400px or larger, square format\n\n")
	b.WriteString("### Project Report\n")
	fmt.Fprintf(&b, "- **File name:** `%s_practicum%s_report.pdf` in `reports/`\n\n", student.Username, numeral)
	b.WriteString("### Presentation Slides\n")
	fmt.Fprintf(&b, "- **File name:** `%s_practicum%s_slides.pdf` in `presentations/`\n\n", student.Username, numeral)

	b.WriteString("## Links to Update\n\n")
	b.WriteString("Make sure to update these in your `profile.md`:\n")
	b.WriteString("- GitHub repository URLs\n")
	b.WriteString("- LinkedIn profile\n")
	b.WriteString("- Personal website/portfolio\n")
	b.WriteString("- Any demo/project links\n\n")

	b.WriteString("## Auto-sync\n\n")
	b.WriteString("Your profile syncs to the portfolio site when you push changes to this folder.\n\n")

	b.WriteString("---\n")
	fmt.Fprintf(&b, "*Generated on %s*\n", s.now().Format("2006-01-02 15:04:05"))

	return []byte(b.String())
}
