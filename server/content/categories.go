package content

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
	"github.com/rkuznetsov/inkwell/utils"
)

// CategoryNode is a category with its ordered children.
type CategoryNode struct {
	Category *model.Category `json:"category"`
	Children []*CategoryNode `json:"children"`
}

// CreateCategory inserts a category under the given parent (nil for a
// root). The parent must exist; a fresh node cannot close a cycle since it
// starts without children.
func CreateCategory(db *gorm.DB, title string, description string, parentID *string, position int) (*model.Category, error) {
	if title == "" {
		return nil, errors.Wrap(ErrInvalidInput, "empty title")
	}
	if parentID != nil {
		var count int64
		if err := db.Model(&model.Category{}).Where("id = ?", *parentID).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "failure checking parent category")
		}
		if count == 0 {
			return nil, errors.Wrapf(ErrNotFound, "category %s", *parentID)
		}
	}

	categorySlug, err := utils.UniqueSlugify(db, "categories", title)
	if err != nil {
		return nil, errors.Wrap(err, "failure building category slug")
	}
	category := model.Category{
		Id:          uuid.New().String(),
		ParentID:    parentID,
		Title:       title,
		Slug:        categorySlug,
		Description: description,
		Position:    position,
	}
	if err := db.Create(&category).Error; err != nil {
		return nil, errors.Wrap(err, "failure creating category")
	}
	return &category, nil
}

// MoveCategory reparents a category. Moving under nil makes it a root.
// Moving a node under itself or under any of its descendants is rejected,
// which keeps the adjacency list a tree.
func MoveCategory(db *gorm.DB, categoryID string, newParentID *string) error {
	var category model.Category
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrNotFound, "category %s", categoryID)
		}
		return errors.Wrap(err, "failure looking up category")
	}

	if newParentID != nil {
		// Walk up from the proposed parent; hitting the moved node means
		// the move would create a cycle.
		cursor := newParentID
		for cursor != nil {
			if *cursor == categoryID {
				return errors.Wrap(ErrInvalidInput, "move would create a cycle")
			}
			var parent model.Category
			if err := db.Where("id = ?", *cursor).First(&parent).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.Wrapf(ErrNotFound, "category %s", *cursor)
				}
				return errors.Wrap(err, "failure walking category tree")
			}
			cursor = parent.ParentID
		}
	}

	return db.Model(&category).Update("parent_id", newParentID).Error
}

// CategoryTree loads the whole rubric tree, siblings ordered by position
// then title.
func CategoryTree(db *gorm.DB) ([]*CategoryNode, error) {
	var categories []*model.Category
	if err := db.Order("position ASC, title ASC").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "failure listing categories")
	}

	nodes := make(map[string]*CategoryNode, len(categories))
	var roots []*CategoryNode
	for _, category := range categories {
		nodes[category.Id] = &CategoryNode{Category: category}
	}
	for _, category := range categories {
		node := nodes[category.Id]
		if category.ParentID != nil {
			if parent, ok := nodes[*category.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}
