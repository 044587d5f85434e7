// Package medialink rewrites Google Drive share links into direct image URLs.
package medialink

import "regexp"

const embedTemplate = "https://lh3.googleusercontent.com/d/"

var (
	directPattern = regexp.MustCompile(`(?i)^https?://lh\d+\.googleusercontent\.com/d/`)
	bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{10,}$`)

	// Checked in order; the first capture wins.
	idPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://drive\.google\.com/file/d/([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`(?i)https?://drive\.google\.com/open\?id=([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`(?i)https?://drive\.google\.com/uc\?id=([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`(?i)[?&]id=([A-Za-z0-9_-]+)`),
	}
)

// ToEmbeddable is best effort: anything it cannot recognise is returned as is.
// Applying it twice gives the same result as applying it once.
func ToEmbeddable(raw string) string {
	if raw == "" {
		return ""
	}
	if directPattern.MatchString(raw) {
		return raw
	}

	if id := extractID(raw); id != "" {
		return embedTemplate + id
	}
	return raw
}

func extractID(raw string) string {
	for _, re := range idPatterns {
		if m := re.FindStringSubmatch(raw); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	if bareIDPattern.MatchString(raw) {
		return raw
	}
	return ""
}
