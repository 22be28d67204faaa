package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment moderation states.
const (
	CommentStatusPublished = "published"
	CommentStatusDraft     = "draft"
)

/*

Comment is a threaded reply attached to exactly one article

Id: primary key, use to identify a comment
ArticleID:
Article: article this comment belongs to, "belongs-to" relation
AuthorID:
Author: user who wrote the comment, "belongs-to" relation

ParentID:
Parent: the comment being replied to, nil for a top level comment.
	Adjacency list, a parent always belongs to the same article.

Content: comment body in plain text
Status: CommentStatusPublished or CommentStatusDraft (moderation)

*/

type Comment struct {
	Id        string         `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	ArticleID string         `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Article   Article        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  string
	Author    User
	ParentID  *string
	Parent    *Comment
	Content   string
	Status    string
}
