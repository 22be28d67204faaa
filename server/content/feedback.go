package content

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

// FeedbackInput carries the contact form fields.
type FeedbackInput struct {
	Subject string
	Email   string
	Content string
}

// CreateFeedback records a contact form message together with the sender's
// resolved client key and, when signed in, their user id. Works for
// anonymous senders; delivery of the actual email is someone else's job.
func CreateFeedback(db *gorm.DB, input FeedbackInput, clientKey string, userID *string) (*model.Feedback, error) {
	if input.Email == "" || input.Content == "" {
		return nil, errors.Wrap(ErrInvalidInput, "feedback requires an email and a message")
	}

	feedback := model.Feedback{
		Id:        uuid.New().String(),
		Subject:   input.Subject,
		Email:     input.Email,
		Content:   input.Content,
		ClientKey: clientKey,
		UserID:    userID,
	}
	if err := db.Create(&feedback).Error; err != nil {
		return nil, errors.Wrap(err, "failure recording feedback")
	}
	return &feedback, nil
}
