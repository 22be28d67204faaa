package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkuznetsov/inkwell/model"
	"github.com/rkuznetsov/inkwell/utils"
)

func TestCreateArticle(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "writer")
	tag := utils.TestCreateTag(t, db, "prose")

	t.Run("Slug derives from the title", func(t *testing.T) {
		article, err := CreateArticle(db, author.Id, ArticleInput{
			Title:  "Моя первая статья",
			TagIDs: []string{tag.Id},
		})
		require.NoError(t, err)
		require.Equal(t, "moia-pervaia-statia", article.Slug)
		require.Equal(t, model.ArticleStatusPublished, article.Status)
		require.Len(t, article.Tags, 1)
	})

	t.Run("Identical titles get distinct slugs", func(t *testing.T) {
		first, err := CreateArticle(db, author.Id, ArticleInput{Title: "Duplicate Title"})
		require.NoError(t, err)
		second, err := CreateArticle(db, author.Id, ArticleInput{Title: "Duplicate Title"})
		require.NoError(t, err)

		require.Equal(t, "duplicate-title", first.Slug)
		require.NotEqual(t, first.Slug, second.Slug)
		// The suffix is a dash plus 8 hex chars of a fresh uuid.
		require.Len(t, second.Slug, len(first.Slug)+9)
		require.Equal(t, first.Slug+"-", second.Slug[:len(first.Slug)+1])
	})

	t.Run("Anonymous author", func(t *testing.T) {
		_, err := CreateArticle(db, "", ArticleInput{Title: "Nope"})
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Empty title", func(t *testing.T) {
		_, err := CreateArticle(db, author.Id, ArticleInput{})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown status", func(t *testing.T) {
		_, err := CreateArticle(db, author.Id, ArticleInput{Title: "Nope", Status: "archived"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown tag", func(t *testing.T) {
		_, err := CreateArticle(db, author.Id, ArticleInput{Title: "Nope", TagIDs: []string{"no-such-tag"}})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateArticle(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "editor")
	stranger := utils.TestCreateUser(t, db, "stranger")
	tagOld := utils.TestCreateTag(t, db, "old")
	tagNew := utils.TestCreateTag(t, db, "new")
	article := utils.TestCreateArticle(t, db, author, "Editable", tagOld)

	t.Run("Author edits content and tags, slug stays", func(t *testing.T) {
		updated, err := UpdateArticle(db, article.Id, author.Id, ArticleInput{
			Title:  "Edited title",
			TagIDs: []string{tagNew.Id},
		})
		require.NoError(t, err)
		require.Equal(t, "Edited title", updated.Title)
		require.Equal(t, article.Slug, updated.Slug)

		reloaded, err := GetArticleBySlug(db, article.Slug)
		require.NoError(t, err)
		require.Len(t, reloaded.Tags, 1)
		require.Equal(t, tagNew.Id, reloaded.Tags[0].Id)
	})

	t.Run("Only the author may edit", func(t *testing.T) {
		_, err := UpdateArticle(db, article.Id, stranger.Id, ArticleInput{Title: "Hijacked"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown article", func(t *testing.T) {
		_, err := UpdateArticle(db, "no-such-article", author.Id, ArticleInput{Title: "Void"})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestArticleListings(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "lister")
	reader := utils.TestCreateUser(t, db, "reader")
	readerProfile := utils.TestCreateProfile(t, db, reader)
	authorProfile := utils.TestCreateProfile(t, db, author)

	tag := utils.TestCreateTag(t, db, "listed")
	category, err := CreateCategory(db, "Essays", "", nil, 0)
	require.NoError(t, err)

	tagged := utils.TestCreateArticle(t, db, author, "Tagged piece", tag)
	inCategory, err := CreateArticle(db, author.Id, ArticleInput{
		Title:      "Categorized piece",
		CategoryID: &category.Id,
	})
	require.NoError(t, err)

	t.Run("By tag", func(t *testing.T) {
		articles, err := ArticlesByTag(db, tag.Slug)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		require.Equal(t, tagged.Id, articles[0].Id)
	})

	t.Run("By category", func(t *testing.T) {
		articles, err := ArticlesByCategory(db, category.Slug)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		require.Equal(t, inCategory.Id, articles[0].Id)
	})

	t.Run("By followed authors", func(t *testing.T) {
		empty, err := ArticlesByFollowedAuthors(db, readerProfile.Id)
		require.NoError(t, err)
		require.Len(t, empty, 0)

		_, err = ToggleFollow(db, readerProfile.Id, authorProfile.Slug)
		require.NoError(t, err)

		feed, err := ArticlesByFollowedAuthors(db, readerProfile.Id)
		require.NoError(t, err)
		require.Len(t, feed, 2)
	})

	t.Run("Unknown slugs are NotFound", func(t *testing.T) {
		_, err := ArticlesByTag(db, "no-such-tag")
		require.ErrorIs(t, err, ErrNotFound)
		_, err = ArticlesByCategory(db, "no-such-category")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSearchArticles(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "searcher")
	match, err := CreateArticle(db, author.Id, ArticleInput{
		Title:           "Gardening for beginners",
		FullDescription: "Soil, seeds and patience.",
	})
	require.NoError(t, err)
	_, err = CreateArticle(db, author.Id, ArticleInput{
		Title:           "Unrelated cooking notes",
		FullDescription: "Nothing about plants here.",
	})
	require.NoError(t, err)

	t.Run("Title match clears the rank floor", func(t *testing.T) {
		found, err := SearchArticles(db, "gardening")
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, match.Id, found[0].Id)
	})

	t.Run("No match", func(t *testing.T) {
		found, err := SearchArticles(db, "astronomy")
		require.NoError(t, err)
		require.Len(t, found, 0)
	})

	t.Run("Empty query", func(t *testing.T) {
		_, err := SearchArticles(db, "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
