package model

import (
	"time"
)

/*

ViewRecord marks that one client has seen one article

ArticleID: article id
ClientKey: coarse client identity resolved from connection metadata, see
	utils.GetClientKey. Not an authenticated identity.
ViewedOn: time of the first, and therefore only, counted view

The composite primary key is the whole point of this table: at most one row
per (article, client) ever exists, so the row count per article equals the
number of distinct clients that viewed it, not the number of requests.
Rows are never expired.

*/

type ViewRecord struct {
	ArticleID string    `gorm:"primaryKey"`
	ClientKey string    `gorm:"primaryKey"`
	ViewedOn  time.Time `gorm:"index"`
}
