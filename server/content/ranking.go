package content

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

const popularArticlesLimit = 10

// TagCount is one entry of the tag popularity listing.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

/*
PopularArticles ranks articles by views over rolling windows anchored at now.

Window one is the trailing seven days, window two is the current calendar
day from midnight local time. Articles order by the week count descending,
ties broken by the today count descending, and the top 10 are returned.
Articles with no views in the week still rank, their sort key is simply
zero; residual ties beyond the tie-break keep whatever order the database
produced.
*/
func PopularArticles(db *gorm.DB, now time.Time) ([]*model.Article, error) {
	weekStart := now.Add(-7 * 24 * time.Hour)
	year, month, day := now.Date()
	todayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	var articles []*model.Article
	err := db.Model(&model.Article{}).
		Select(`articles.*,
			(SELECT COUNT(*) FROM view_records v WHERE v.article_id = articles.id AND v.viewed_on >= ? AND v.viewed_on <= ?) AS total_view_count,
			(SELECT COUNT(*) FROM view_records v WHERE v.article_id = articles.id AND v.viewed_on >= ? AND v.viewed_on <= ?) AS today_view_count`,
			weekStart, now, todayStart, now).
		Where("articles.status = ?", model.ArticleStatusPublished).
		Order("total_view_count DESC, today_view_count DESC").
		Limit(popularArticlesLimit).
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure ranking popular articles")
	}
	return articles, nil
}

// PopularTags counts articles per tag and orders tags by that count
// descending. Every tag is returned, including unused ones with a zero
// count; the caller limits display as needed.
func PopularTags(db *gorm.DB) ([]TagCount, error) {
	var counts []TagCount
	err := db.Model(&model.Tag{}).
		Select("tags.name, tags.slug, COUNT(article_tags.article_id) AS count").
		Joins("LEFT JOIN article_tags ON article_tags.tag_id = tags.id").
		Group("tags.id").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure ranking popular tags")
	}
	return counts, nil
}
