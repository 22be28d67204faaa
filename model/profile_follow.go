package model

import (
	"time"
)

/*

ProfileFollow is a "many-to-many" relation of one profile following another

FollowerID: profile that follows
FolloweeID: profile being followed
CreatedAt: time when relation is created

The composite primary key makes the edge unique, toggling relies on it. The
edge is removed outright on unfollow so a later re-follow can insert it
again. The edge is directional on purpose, never mirror it automatically.

*/

type ProfileFollow struct {
	FollowerID string    `gorm:"primaryKey"`
	FolloweeID string    `gorm:"primaryKey"`
	CreatedAt  time.Time
}
