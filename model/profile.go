package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*

Profile is the public face of a user

Id: primary key, use to identify a profile
UserID:
User: account this profile belongs to, strictly one-to-one

Slug: unique url part, derived from the username on creation
Bio: free-form self description
AvatarUrl: avatar image location, storage itself is out of scope
BirthDay: optional date of birth

Following: profiles this profile follows, "many-to-many" relation through
ProfileFollow. The relation is directional: A following B does not imply B
following A.

*/

type Profile struct {
	Id        string          `gorm:"primaryKey"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt
	UserID    string          `gorm:"uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User      User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Slug      string          `gorm:"uniqueIndex"`
	Bio       string
	AvatarUrl string
	BirthDay  *datatypes.Date
	Following []*Profile      `json:"following" gorm:"many2many:profile_follows;joinForeignKey:FollowerID;joinReferences:FolloweeID"`
}
