package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrValidation marks request errors caught before they reach a store.
// Controllers map it to a 400 with the wrapped message inline.
var ErrValidation = errors.New("validation failed")

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9 -]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a title or name: lowercase, strip
// everything outside [a-z0-9 -], spaces to dashes, dashes collapsed.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// sanitizer strips unsafe markup from admin-supplied rich content
// (blog posts, static pages) before it is stored.
var sanitizer = bluemonday.UGCPolicy()
