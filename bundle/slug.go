// Package bundle manages named transcript collections on disk: the bundle
// directory, its per-video record files, and the _index.md manifest that
// summarizes them.
package bundle

import (
	"regexp"
	"strings"
)

const maxSlugLen = 60

var nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts text to a filesystem-safe bundle name: lowercase, every
// run of non-alphanumeric characters collapsed to a single underscore,
// leading and trailing underscores stripped, truncated to 60 characters.
//
//	"Sales Automation Tools" -> "sales_automation_tools"
func Slugify(text string) string {
	slug := nonAlnumRE.ReplaceAllString(strings.ToLower(text), "_")
	slug = strings.Trim(slug, "_")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "_")
	}
	return slug
}
