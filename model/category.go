package model

import (
	"time"

	"gorm.io/gorm"
)

/*

Category is a node of the hierarchical rubric tree

Id: primary key, use to identify a category
ParentID:
Parent: parent node, nil for a root. Adjacency list, the application keeps
the tree cycle-free (a node's parent chain never revisits the node).

Title: display name
Slug: unique url part
Description: free-form description
Position: order among siblings, ascending

*/

type Category struct {
	Id          string         `gorm:"primaryKey"`
	CreatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	ParentID    *string
	Parent      *Category
	Title       string
	Slug        string         `gorm:"uniqueIndex"`
	Description string
	Position    int
}
