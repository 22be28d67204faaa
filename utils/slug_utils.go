package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const slugSuffixLength = 8

// UniqueSlugify turns base into a url slug that is unique within table. On
// collision it keeps appending "-" plus an 8 char random hex token until the
// probe misses. Cyrillic and other non-latin input is transliterated.
func UniqueSlugify(db *gorm.DB, table string, base string) (string, error) {
	candidate := slug.Make(base)
	for {
		var count int64
		if err := db.Table(table).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:slugSuffixLength]
		candidate = fmt.Sprintf("%s-%s", candidate, suffix)
	}
}
