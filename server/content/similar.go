package content

import (
	"math/rand"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

const similarArticlesLimit = 6

/*
SimilarArticles recommends articles that share tags with the source.

Candidates are every other article carrying at least one of the source's
tags, ranked by the number of shared tags descending. The ranked list is
then fully shuffled before truncating to 6. Discarding the ordering right
after computing it looks odd but is deliberate, the site has always shown a
random pick from the best candidates; treat it as diversity injection until
product says otherwise.
*/
func SimilarArticles(db *gorm.DB, articleID string) ([]*model.Article, error) {
	var count int64
	if err := db.Model(&model.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failure checking article existence")
	}
	if count == 0 {
		return nil, errors.Wrapf(ErrNotFound, "article %s", articleID)
	}

	tagIDs := db.Table("article_tags").Select("tag_id").Where("article_id = ?", articleID)

	var candidates []*model.Article
	err := db.Model(&model.Article{}).
		Select("articles.*, COUNT(article_tags.tag_id) AS related_tags").
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("article_tags.tag_id IN (?) AND articles.id <> ?", tagIDs, articleID).
		Group("articles.id").
		Order("related_tags DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure collecting similar articles")
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > similarArticlesLimit {
		candidates = candidates[:similarArticlesLimit]
	}
	return candidates, nil
}
