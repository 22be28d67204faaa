package content

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

// Vote lifecycle outcomes. A client's repeated identical vote retracts it,
// a changed vote overwrites it.
const (
	VoteCreated = "created"
	VoteUpdated = "updated"
	VoteDeleted = "deleted"
)

// VoteResult reports what happened to the client's vote and the article's
// rating sum after the change.
type VoteResult struct {
	Status    string `json:"status"`
	RatingSum int    `json:"rating_sum"`
}

/*
CastVote applies one step of the per-client vote toggle on an article.

Keyed on (article, client), not on value:
  - no existing vote: create one with the given value and optional user
    attribution, status "created"
  - existing vote with the same value: delete it, status "deleted"
  - existing vote with a different value: overwrite value and attribution,
    status "updated"

The whole branch runs in a single transaction. If two first votes from the
same client race, the loser hits the (article_id, client_key) unique index;
that conflict is retried exactly once, which re-reads the winner's row and
lands in the delete-or-update branch. The caller never sees the race.
*/
func CastVote(db *gorm.DB, articleID string, clientKey string, userID *string, value int) (*VoteResult, error) {
	if value != 1 && value != -1 {
		return nil, errors.Wrapf(ErrInvalidInput, "vote value %d", value)
	}
	if clientKey == "" {
		return nil, errors.Wrap(ErrInvalidInput, "empty client key")
	}

	var count int64
	if err := db.Model(&model.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failure checking article existence")
	}
	if count == 0 {
		return nil, errors.Wrapf(ErrNotFound, "article %s", articleID)
	}

	result, err := castVoteOnce(db, articleID, clientKey, userID, value)
	if isUniqueViolation(err) {
		// Lost a create race. The winning row exists now, so a single rerun
		// resolves to update or delete.
		result, err = castVoteOnce(db, articleID, clientKey, userID, value)
	}
	return result, err
}

func castVoteOnce(db *gorm.DB, articleID string, clientKey string, userID *string, value int) (*VoteResult, error) {
	var result VoteResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var rating model.Rating
		lookup := tx.Where("article_id = ? AND client_key = ?", articleID, clientKey).First(&rating)
		if lookup.Error != nil {
			if !errors.Is(lookup.Error, gorm.ErrRecordNotFound) {
				return errors.Wrap(lookup.Error, "failure looking up rating")
			}
			rating = model.Rating{
				Id:        uuid.New().String(),
				ArticleID: articleID,
				ClientKey: clientKey,
				UserID:    userID,
				Value:     value,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
			result.Status = VoteCreated
		} else if rating.Value == value {
			if err := tx.Delete(&rating).Error; err != nil {
				return errors.Wrap(err, "failure deleting rating")
			}
			result.Status = VoteDeleted
		} else {
			rating.Value = value
			rating.UserID = userID
			if err := tx.Save(&rating).Error; err != nil {
				return errors.Wrap(err, "failure updating rating")
			}
			result.Status = VoteUpdated
		}

		sum, err := ratingSum(tx, articleID)
		if err != nil {
			return err
		}
		result.RatingSum = sum
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RatingSum returns the current sum of all vote values on the article.
func RatingSum(db *gorm.DB, articleID string) (int, error) {
	return ratingSum(db, articleID)
}

func ratingSum(db *gorm.DB, articleID string) (int, error) {
	var sum int
	err := db.Model(&model.Rating{}).
		Where("article_id = ?", articleID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, "failure summing ratings")
	}
	return sum, nil
}
