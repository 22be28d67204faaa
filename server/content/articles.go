package content

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
	"github.com/rkuznetsov/inkwell/utils"
)

const searchRankFloor = 0.3

// ArticleInput carries the author-supplied fields of a new or updated
// article. Tags are attached by id and must exist.
type ArticleInput struct {
	Title            string
	ShortDescription string
	FullDescription  string
	CategoryID       *string
	TagIDs           []string
	Status           string
}

/*
CreateArticle inserts an article owned by the given author.

The slug comes from the title; two articles may share a title, the second
one gets a random 8 char suffix appended to its slug. Articles default to
published when no status is supplied.
*/
func CreateArticle(db *gorm.DB, authorID string, input ArticleInput) (*model.Article, error) {
	if authorID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "publishing requires a signed-in author")
	}
	if input.Title == "" {
		return nil, errors.Wrap(ErrInvalidInput, "empty title")
	}
	status := input.Status
	if status == "" {
		status = model.ArticleStatusPublished
	}
	if status != model.ArticleStatusPublished && status != model.ArticleStatusDraft {
		return nil, errors.Wrapf(ErrInvalidInput, "status %s", status)
	}

	tags, err := lookupTags(db, input.TagIDs)
	if err != nil {
		return nil, err
	}

	articleSlug, err := utils.UniqueSlugify(db, "articles", input.Title)
	if err != nil {
		return nil, errors.Wrap(err, "failure building article slug")
	}

	article := model.Article{
		Id:               uuid.New().String(),
		Title:            input.Title,
		Slug:             articleSlug,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		AuthorID:         authorID,
		CategoryID:       input.CategoryID,
		Tags:             tags,
		Status:           status,
	}
	if err := db.Create(&article).Error; err != nil {
		return nil, errors.Wrap(err, "failure creating article")
	}
	return &article, nil
}

// UpdateArticle applies input to an existing article. Only the owning
// author may edit; the slug is intentionally stable across title edits.
func UpdateArticle(db *gorm.DB, articleID string, actorUserID string, input ArticleInput) (*model.Article, error) {
	if actorUserID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "editing requires a signed-in author")
	}

	var article model.Article
	if err := db.Where("id = ?", articleID).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "article %s", articleID)
		}
		return nil, errors.Wrap(err, "failure looking up article")
	}
	if article.AuthorID != actorUserID {
		return nil, errors.Wrap(ErrInvalidInput, "only the author can edit an article")
	}

	tags, err := lookupTags(db, input.TagIDs)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		article.Title = input.Title
		article.ShortDescription = input.ShortDescription
		article.FullDescription = input.FullDescription
		article.CategoryID = input.CategoryID
		if input.Status != "" {
			article.Status = input.Status
		}
		if err := tx.Save(&article).Error; err != nil {
			return errors.Wrap(err, "failure saving article")
		}
		if input.TagIDs != nil {
			if err := tx.Model(&article).Association("Tags").Replace(tags); err != nil {
				return errors.Wrap(err, "failure replacing tags")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetArticleBySlug loads one published article with its associations for
// the detail page.
func GetArticleBySlug(db *gorm.DB, slug string) (*model.Article, error) {
	var article model.Article
	err := db.Preload("Author").Preload("Category").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "article %s", slug)
		}
		return nil, errors.Wrap(err, "failure looking up article")
	}
	return &article, nil
}

// ArticlesByCategory lists published articles in the category, newest
// first. Unknown category slugs are NotFound.
func ArticlesByCategory(db *gorm.DB, categorySlug string) ([]*model.Article, error) {
	var category model.Category
	if err := db.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "category %s", categorySlug)
		}
		return nil, errors.Wrap(err, "failure looking up category")
	}
	var articles []*model.Article
	err := db.Preload("Tags").
		Where("category_id = ? AND status = ?", category.Id, model.ArticleStatusPublished).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure listing articles by category")
	}
	return articles, nil
}

// ArticlesByTag lists published articles carrying the tag, newest first.
func ArticlesByTag(db *gorm.DB, tagSlug string) ([]*model.Article, error) {
	var tag model.Tag
	if err := db.Where("slug = ?", tagSlug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "tag %s", tagSlug)
		}
		return nil, errors.Wrap(err, "failure looking up tag")
	}
	var articles []*model.Article
	err := db.Preload("Tags").
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("article_tags.tag_id = ? AND articles.status = ?", tag.Id, model.ArticleStatusPublished).
		Order("articles.created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure listing articles by tag")
	}
	return articles, nil
}

// ArticlesByFollowedAuthors lists published articles written by the users
// whose profiles the given profile follows, newest first.
func ArticlesByFollowedAuthors(db *gorm.DB, profileID string) ([]*model.Article, error) {
	if profileID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "the author feed requires a signed-in user")
	}
	authorIDs := db.Table("profiles").Select("profiles.user_id").
		Joins("JOIN profile_follows ON profile_follows.followee_id = profiles.id").
		Where("profile_follows.follower_id = ?", profileID)

	var articles []*model.Article
	err := db.Preload("Author").Preload("Tags").
		Where("author_id IN (?) AND status = ?", authorIDs, model.ArticleStatusPublished).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure listing followed authors' articles")
	}
	return articles, nil
}

// SearchArticles runs postgres full-text search over titles (weight A) and
// bodies (weight B), keeping matches ranked at or above 0.3.
func SearchArticles(db *gorm.DB, query string) ([]*model.Article, error) {
	if query == "" {
		return nil, errors.Wrap(ErrInvalidInput, "empty search query")
	}
	const vector = "setweight(to_tsvector(articles.title), 'A') || setweight(to_tsvector(articles.full_description), 'B')"

	var articles []*model.Article
	err := db.Model(&model.Article{}).
		Select("articles.*, ts_rank("+vector+", plainto_tsquery(?)) AS rank", query).
		Where("ts_rank("+vector+", plainto_tsquery(?)) >= ? AND articles.status = ?", query, searchRankFloor, model.ArticleStatusPublished).
		Order("rank DESC").
		Find(&articles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure searching articles")
	}
	return articles, nil
}

func lookupTags(db *gorm.DB, tagIDs []string) ([]*model.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	var tags []*model.Tag
	if err := db.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return nil, errors.Wrap(err, "failure looking up tags")
	}
	if len(tags) != len(tagIDs) {
		return nil, errors.Wrap(ErrNotFound, "unknown tag id")
	}
	return tags, nil
}
