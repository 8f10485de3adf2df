package profile

import "errors"

var (
	ErrEmptyDocument      = errors.New("profile: document is empty")
	ErrNilDocument        = errors.New("profile: document is nil")
	ErrSectionKeyInvalid  = errors.New("profile: section key is not a project section")
	ErrProjectTitleMissed = errors.New("profile: project record has no title")
)
