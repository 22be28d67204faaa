package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

// create user with the given username, do sanity checks and return it
func TestCreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{
		Id:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// create the user's profile with a slug derived from the username
func TestCreateProfile(t *testing.T, db *gorm.DB, user *model.User) *model.Profile {
	t.Helper()
	profileSlug, err := UniqueSlugify(db, "profiles", user.Username)
	require.NoError(t, err)
	profile := model.Profile{
		Id:     uuid.New().String(),
		UserID: user.Id,
		Slug:   profileSlug,
	}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}

// create a tag with a slug matching its name
func TestCreateTag(t *testing.T, db *gorm.DB, name string) *model.Tag {
	t.Helper()
	tagSlug, err := UniqueSlugify(db, "tags", name)
	require.NoError(t, err)
	tag := model.Tag{
		Id:   uuid.New().String(),
		Name: name,
		Slug: tagSlug,
	}
	require.NoError(t, db.Create(&tag).Error)
	return &tag
}

// create a published article owned by author, optionally tagged
func TestCreateArticle(t *testing.T, db *gorm.DB, author *model.User, title string, tags ...*model.Tag) *model.Article {
	t.Helper()
	articleSlug, err := UniqueSlugify(db, "articles", title)
	require.NoError(t, err)
	article := model.Article{
		Id:       uuid.New().String(),
		Title:    title,
		Slug:     articleSlug,
		AuthorID: author.Id,
		Tags:     tags,
		Status:   model.ArticleStatusPublished,
	}
	require.NoError(t, db.Create(&article).Error)
	return &article
}
