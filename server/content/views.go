package content

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rkuznetsov/inkwell/model"
)

/*
RecordView counts at most one view per (article, client) pair, ever.

The insert goes through INSERT .. ON CONFLICT DO NOTHING against the
composite primary key, so two concurrent first views from the same client
cannot produce two rows and neither request observes an error. The function
is idempotent: repeat calls return the original record with its original
ViewedOn timestamp.
*/
func RecordView(db *gorm.DB, articleID string, clientKey string) (*model.ViewRecord, error) {
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

	record := model.ViewRecord{
		ArticleID: articleID,
		ClientKey: clientKey,
		ViewedOn:  time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return nil, errors.Wrap(err, "failure recording view")
	}

	// Re-read so the caller always gets the persisted row, which under a
	// conflict is the pre-existing one, not the candidate we just built.
	var persisted model.ViewRecord
	if err := db.Where("article_id = ? AND client_key = ?", articleID, clientKey).First(&persisted).Error; err != nil {
		return nil, errors.Wrap(err, "failure reading view record back")
	}
	return &persisted, nil
}

// ViewCount returns the number of distinct clients that ever viewed the
// article.
func ViewCount(db *gorm.DB, articleID string) (int64, error) {
	var count int64
	err := db.Model(&model.ViewRecord{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
