package rostercmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const ingestRosterMessageType = "portfolio.roster.ingest"

// IngestRosterCommand loads a roster CSV export and scaffolds a directory tree
// plus a starter profile for every enrolled student. DryRun reports what would
// be created without touching the filesystem.
type IngestRosterCommand struct {
	// CSVPath points at the roster export, e.g. rosters/2025_Summer_MSDS692.csv.
	// The course offering is derived from the filename.
	CSVPath string `json:"csv_path"`
	// StudentsDir is where the per-student trees are created; the site sync
	// reads the same directory.
	StudentsDir string `json:"students_dir"`
	// DryRun lists students without creating directories or profiles.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (IngestRosterCommand) Type() string { return ingestRosterMessageType }

// Validate ensures required paths are present before handlers execute.
func (cmd IngestRosterCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.CSVPath, validation.Required, validation.By(notBlank("portfolio.roster.ingest.csv_path_required", "csv path is required"))),
		validation.Field(&cmd.StudentsDir, validation.Required, validation.By(notBlank("portfolio.roster.ingest.students_dir_required", "students dir is required"))),
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
