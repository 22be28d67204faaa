package model

import (
	"time"

	"gorm.io/gorm"
)

/*

Tag is a free label attached to articles

Id: primary key, use to identify a tag
Name: unique display name
Slug: unique url part

*/

type Tag struct {
	Id        string         `gorm:"primaryKey"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt
	Name      string         `gorm:"uniqueIndex"`
	Slug      string         `gorm:"uniqueIndex"`
}
