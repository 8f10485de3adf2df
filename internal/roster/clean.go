package roster

import (
	"strings"

	"github.com/goliatone/go-slug"
)

const campusDomain = "@regis.edu"

// CleanEmail normalises a campus address: the worldclass subdomain is
// stripped (ajensen008@worldclass.regis.edu -> ajensen008@regis.edu) and any
// other domain is rewritten onto the campus one.
func CleanEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return email
	}

	email = strings.ReplaceAll(email, "@worldclass.regis.edu", campusDomain)

	if !strings.Contains(email, campusDomain) && strings.Contains(email, "@") {
		local, _, _ := strings.Cut(email, "@")
		email = local + campusDomain
	}
	return email
}

// CleanUsername strips the export's stray '#' markers and normalises the
// result into slug form so it is safe as a directory and URL segment. Values
// the normaliser rejects are returned cleaned but otherwise as-is.
func CleanUsername(username string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(username, "#", ""))
	if cleaned == "" {
		return cleaned
	}
	normalized, err := slug.Normalize(cleaned)
	if err != nil {
		return cleaned
	}
	return normalized
}

// IsDemoAccount reports whether a username belongs to a demo or test account
// the roster loader should skip.
func IsDemoAccount(username string) bool {
	lowered := strings.ToLower(username)
	return strings.Contains(lowered, "demo") || strings.Contains(lowered, "test")
}
