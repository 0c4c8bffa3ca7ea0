package models

import (
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// Slugify lowercases s and joins its alphanumeric runs with single dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// uniqueSlug appends -1, -2, ... to base until no row in model's table uses it.
func uniqueSlug(tx *gorm.DB, model interface{}, base string, maxLen int) (string, error) {
	if len(base) > maxLen {
		base = strings.TrimSuffix(base[:maxLen], "-")
	}
	slug := base
	for n := 1; ; n++ {
		var count int64
		if err := tx.Session(&gorm.Session{NewDB: true}).Model(model).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
