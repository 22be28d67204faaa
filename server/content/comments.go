package content

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

const defaultLatestCommentsCount = 5

// CommentNode is a comment with its replies, in creation order.
type CommentNode struct {
	Comment  *model.Comment `json:"comment"`
	Children []*CommentNode `json:"children"`
}

/*
CreateComment attaches a comment to an article, optionally as a reply.

Requires a signed-in author. A reply's parent must exist and belong to the
same article; the adjacency list stays a tree because a new node is always
a leaf.
*/
func CreateComment(db *gorm.DB, articleID string, authorID string, parentID *string, body string) (*model.Comment, error) {
	if authorID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "commenting requires a signed-in author")
	}
	if body == "" {
		return nil, errors.Wrap(ErrInvalidInput, "empty comment")
	}

	var count int64
	if err := db.Model(&model.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failure checking article existence")
	}
	if count == 0 {
		return nil, errors.Wrapf(ErrNotFound, "article %s", articleID)
	}

	if parentID != nil {
		var parent model.Comment
		if err := db.Where("id = ?", *parentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.Wrapf(ErrNotFound, "parent comment %s", *parentID)
			}
			return nil, errors.Wrap(err, "failure looking up parent comment")
		}
		if parent.ArticleID != articleID {
			return nil, errors.Wrap(ErrInvalidInput, "parent comment belongs to another article")
		}
	}

	comment := model.Comment{
		Id:        uuid.New().String(),
		ArticleID: articleID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   body,
		Status:    model.CommentStatusPublished,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, errors.Wrap(err, "failure creating comment")
	}
	return &comment, nil
}

// LatestComments returns the newest published comments, author preloaded.
// A non-positive count falls back to the default of 5.
func LatestComments(db *gorm.DB, count int) ([]*model.Comment, error) {
	if count <= 0 {
		count = defaultLatestCommentsCount
	}
	var comments []*model.Comment
	err := db.Preload("Author").
		Where("status = ?", model.CommentStatusPublished).
		Order("created_at DESC").
		Limit(count).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure listing latest comments")
	}
	return comments, nil
}

// CommentTree loads the article's published comments as a forest, children
// under their parents, siblings in creation order.
func CommentTree(db *gorm.DB, articleID string) ([]*CommentNode, error) {
	var comments []*model.Comment
	err := db.Preload("Author").
		Where("article_id = ? AND status = ?", articleID, model.CommentStatusPublished).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure listing comments")
	}

	nodes := make(map[string]*CommentNode, len(comments))
	var roots []*CommentNode
	for _, comment := range comments {
		nodes[comment.Id] = &CommentNode{Comment: comment}
	}
	for _, comment := range comments {
		node := nodes[comment.Id]
		if comment.ParentID != nil {
			if parent, ok := nodes[*comment.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
			// Parent hidden by moderation, surface the orphan at top level
			// rather than dropping the subtree.
		}
		roots = append(roots, node)
	}
	return roots, nil
}
