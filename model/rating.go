package model

import (
	"time"
)

/*

Rating is one client's vote on one article

Id: primary key
ArticleID: article being rated
ClientKey: coarse client identity, same key the view ledger uses
UserID: optional authenticated user attribution, updated on revote
Value: +1 or -1

The unique index over (article_id, client_key) keeps a client down to zero
or one active vote per article. The row's lifecycle is a toggle: create on
first vote, delete on a repeated identical vote, update on a changed vote.
See content.CastVote.

*/

type Rating struct {
	Id        string    `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ArticleID string    `gorm:"uniqueIndex:idx_rating_article_client"`
	ClientKey string    `gorm:"uniqueIndex:idx_rating_article_client"`
	UserID    *string
	User      *User
	Value     int
}
