// Package slug generates and validates URL slugs for content records.
// Slugs are lowercase ASCII words separated by single hyphens; the database
// additionally enforces uniqueness per table.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const MaxLength = 120

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValid reports whether s is a well-formed slug.
func IsValid(s string) bool {
	return s != "" && len(s) <= MaxLength && slugPattern.MatchString(s)
}

// Make derives a slug from a title: lowercase, non-alphanumerics collapsed
// to single hyphens, trimmed to MaxLength on a word boundary.
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if len(s) > MaxLength {
		s = s[:MaxLength]
		if i := strings.LastIndexByte(s, '-'); i > 0 {
			s = s[:i]
		}
	}
	return s
}

// RegisterValidation installs the "slug" tag on gin's binding validator so
// request structs can declare `binding:"slug"`.
func RegisterValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsValid(fl.Field().String())
		})
	}
}
