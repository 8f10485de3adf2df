package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const syncSiteMessageType = "portfolio.site.sync"

// SyncSiteCommand regenerates the published portfolio: one HTML page per
// student profile plus the per-course summary JSON files.
type SyncSiteCommand struct {
	// StudentsDir holds one sub-directory per student.
	StudentsDir string `json:"students_dir"`
	// OutputDir receives rendered pages and summaries. Defaults to StudentsDir.
	OutputDir string `json:"output_dir,omitempty"`
	// BaseURL is the published root student assets are served from.
	BaseURL string `json:"base_url,omitempty"`
	// Year and Semester identify the current offering.
	Year     string `json:"year"`
	Semester string `json:"semester"`
}

// Type implements command.Message.
func (SyncSiteCommand) Type() string { return syncSiteMessageType }

// Validate ensures the sync has a source tree and an offering to group by.
func (cmd SyncSiteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.StudentsDir, validation.Required, validation.By(notBlank("portfolio.site.sync.students_dir_required", "students dir is required"))),
		validation.Field(&cmd.Year, validation.Required),
		validation.Field(&cmd.Semester, validation.Required),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
