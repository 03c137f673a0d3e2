package respond

import (
	"regexp"
)

var (
	bearerPattern     = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.~+/]+=*`)
	jwtPattern        = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)\S+`)
)

// SanitizeError masks credentials that may appear in err's message: bearer
// tokens, JWTs, and passwords inside database URLs or key/value DSNs.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = jwtPattern.ReplaceAllString(msg, "****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
