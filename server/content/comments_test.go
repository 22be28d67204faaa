package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkuznetsov/inkwell/utils"
)

func TestCreateComment(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "comment_author")
	article := utils.TestCreateArticle(t, db, author, "Discussed article")
	otherArticle := utils.TestCreateArticle(t, db, author, "Other article")

	t.Run("Top level comment", func(t *testing.T) {
		comment, err := CreateComment(db, article.Id, author.Id, nil, "first!")
		require.NoError(t, err)
		require.Equal(t, article.Id, comment.ArticleID)
		require.Nil(t, comment.ParentID)
	})

	t.Run("Reply to an existing comment", func(t *testing.T) {
		parent, err := CreateComment(db, article.Id, author.Id, nil, "parent")
		require.NoError(t, err)

		reply, err := CreateComment(db, article.Id, author.Id, &parent.Id, "reply")
		require.NoError(t, err)
		require.Equal(t, parent.Id, *reply.ParentID)
	})

	t.Run("Parent must belong to the same article", func(t *testing.T) {
		parent, err := CreateComment(db, otherArticle.Id, author.Id, nil, "elsewhere")
		require.NoError(t, err)

		_, err = CreateComment(db, article.Id, author.Id, &parent.Id, "cross reply")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		parentID := "no-such-comment"
		_, err := CreateComment(db, article.Id, author.Id, &parentID, "orphan")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Unknown article", func(t *testing.T) {
		_, err := CreateComment(db, "no-such-article", author.Id, nil, "void")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Anonymous author", func(t *testing.T) {
		_, err := CreateComment(db, article.Id, "", nil, "anon")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Empty body", func(t *testing.T) {
		_, err := CreateComment(db, article.Id, author.Id, nil, "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCommentTree(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "tree_author")
	article := utils.TestCreateArticle(t, db, author, "Threaded article")

	rootOne, err := CreateComment(db, article.Id, author.Id, nil, "root one")
	require.NoError(t, err)
	rootTwo, err := CreateComment(db, article.Id, author.Id, nil, "root two")
	require.NoError(t, err)
	child, err := CreateComment(db, article.Id, author.Id, &rootOne.Id, "child")
	require.NoError(t, err)
	grandchild, err := CreateComment(db, article.Id, author.Id, &child.Id, "grandchild")
	require.NoError(t, err)

	tree, err := CommentTree(db, article.Id)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	require.Equal(t, rootOne.Id, tree[0].Comment.Id)
	require.Equal(t, rootTwo.Id, tree[1].Comment.Id)
	require.Len(t, tree[1].Children, 0)

	require.Len(t, tree[0].Children, 1)
	require.Equal(t, child.Id, tree[0].Children[0].Comment.Id)
	require.Len(t, tree[0].Children[0].Children, 1)
	require.Equal(t, grandchild.Id, tree[0].Children[0].Children[0].Comment.Id)

	// Author comes preloaded for rendering.
	require.Equal(t, author.Username, tree[0].Comment.Author.Username)
}

func TestLatestComments(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "latest_author")
	article := utils.TestCreateArticle(t, db, author, "Busy article")

	var lastID string
	for i := 0; i < 8; i++ {
		comment, err := CreateComment(db, article.Id, author.Id, nil, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
		lastID = comment.Id
	}

	t.Run("Default count is five, newest first", func(t *testing.T) {
		latest, err := LatestComments(db, 0)
		require.NoError(t, err)
		require.Len(t, latest, 5)
		require.Equal(t, lastID, latest[0].Id)
	})

	t.Run("Explicit count", func(t *testing.T) {
		latest, err := LatestComments(db, 3)
		require.NoError(t, err)
		require.Len(t, latest, 3)
	})
}
