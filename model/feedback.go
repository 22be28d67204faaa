package model

import (
	"time"
)

/*

Feedback is a message sent through the contact form

Subject, Email, Content: the message itself
ClientKey: sender's resolved client address, kept for abuse triage
UserID: set when the sender was signed in, nil otherwise

Delivery of the actual email is out of scope, this is only the record.

*/

type Feedback struct {
	Id        string    `gorm:"primaryKey"`
	CreatedAt time.Time
	Subject   string
	Email     string
	Content   string
	ClientKey string
	UserID    *string
	User      *User
}
