package respond

import (
	"regexp"
)

var (
	// database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// bearer tokens leaking through wrapped errors
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9-_.]+`)

	// bcrypt hashes must never reach logs in full
	bcryptHashPattern = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./a-zA-Z0-9]+`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = bcryptHashPattern.ReplaceAllString(msg, "$$2b$$****")

	return msg
}
