package model

import (
	"time"

	"gorm.io/gorm"
)

// Article publication states. Drafts stay out of every public listing.
const (
	ArticleStatusPublished = "published"
	ArticleStatusDraft     = "draft"
)

/*

Article is a published piece of content

Id: primary key, use to identify an article
CreatedAt: time when entity is created
UpdatedAt: time of last edit, drives the age label on listings
DeletedAt: time when entity is deleted

Title: article's title in plain text
Slug: unique url part derived from the title. On collision the generator
	appends "-" plus an 8 char random token, so two articles may share a
	title but never a slug.
ShortDescription: teaser shown on listings
FullDescription: full body in plain text

AuthorID:
Author: user who created the article and the only one allowed to edit it,
	"belongs-to" relation
CategoryID:
Category: rubric the article lives in, "belongs-to" relation
Tags: labels attached to this article, "many-to-many" relation through
	ArticleTag

Status: ArticleStatusPublished or ArticleStatusDraft

*/

type Article struct {
	Id               string         `gorm:"primaryKey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
	Title            string
	Slug             string         `gorm:"uniqueIndex"`
	ShortDescription string
	FullDescription  string
	AuthorID         string         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Author           User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CategoryID       *string        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Category         *Category      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Tags             []*Tag         `json:"tags" gorm:"many2many:article_tags;"`
	Status           string
}
