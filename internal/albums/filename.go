package albums

import (
	"fmt"
	"regexp"
	"time"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeTitle collapses each run of whitespace in a title to a single
// underscore.
func SanitizeTitle(title string) string {
	return whitespaceRun.ReplaceAllString(title, "_")
}

// PDFFilename derives the document filename for an album from its title and
// creation time. The derivation never depends on the database identifier:
// it happens before the row insert. Nanosecond timestamps keep filenames
// distinct for back-to-back creations with identical titles.
func PDFFilename(title string, createdAt time.Time) string {
	return fmt.Sprintf("%s_%d.pdf", SanitizeTitle(title), createdAt.UnixNano())
}
