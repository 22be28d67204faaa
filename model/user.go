package model

import (
	"time"

	"gorm.io/gorm"
)

/*

User is a registered account

Id: primary key, use to identify a user
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

Username: unique login name, also the base for the profile slug
Email: contact address, managed by the upstream auth service

A Profile is created explicitly by the registration workflow right after the
user row, see content.CreateDefaultProfile. There is no implicit hook.

*/

type User struct {
	Id        string         `gorm:"primaryKey"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt
	Username  string         `gorm:"uniqueIndex"`
	Email     string
}
