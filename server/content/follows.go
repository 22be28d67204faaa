package content

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
)

// FollowResult reports the new state of the edge and the label for the
// next available action, i.e. the opposite of what just happened.
type FollowResult struct {
	Followed bool   `json:"followed"`
	Label    string `json:"label"`
}

/*
ToggleFollow flips the actor -> target follow edge.

If the actor already follows the target the edge is removed, otherwise it is
added. The edge lives in the profile_follows table keyed by (follower,
followee), and the add runs as a plain insert against that primary key
inside a transaction, so two concurrent toggles cannot double-insert. No
reciprocal edge is ever created.
*/
func ToggleFollow(db *gorm.DB, actorProfileID string, targetSlug string) (*FollowResult, error) {
	if actorProfileID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "follow requires a signed-in actor")
	}

	var target model.Profile
	if err := db.Preload("User").Where("slug = ?", targetSlug).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "profile %s", targetSlug)
		}
		return nil, errors.Wrap(err, "failure looking up target profile")
	}

	var actor model.Profile
	if err := db.Where("id = ?", actorProfileID).First(&actor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "profile %s", actorProfileID)
		}
		return nil, errors.Wrap(err, "failure looking up actor profile")
	}

	if actor.Id == target.Id {
		return nil, errors.Wrap(ErrInvalidInput, "cannot follow yourself")
	}

	var result FollowResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing model.ProfileFollow
		lookup := tx.Where("follower_id = ? AND followee_id = ?", actor.Id, target.Id).First(&existing)
		if lookup.Error == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return errors.Wrap(err, "failure removing follow edge")
			}
			result.Followed = false
			result.Label = fmt.Sprintf("Подписаться на %s", target.User.Username)
			return nil
		}
		if !errors.Is(lookup.Error, gorm.ErrRecordNotFound) {
			return errors.Wrap(lookup.Error, "failure looking up follow edge")
		}

		edge := model.ProfileFollow{FollowerID: actor.Id, FolloweeID: target.Id}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}
		result.Followed = true
		result.Label = fmt.Sprintf("Отписаться от %s", target.User.Username)
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Two follows raced; the edge exists, which is the state the
			// caller asked for.
			result.Followed = true
			result.Label = fmt.Sprintf("Отписаться от %s", target.User.Username)
			return &result, nil
		}
		return nil, err
	}
	return &result, nil
}

// Followers lists profiles following the given profile.
func Followers(db *gorm.DB, profileID string) ([]*model.Profile, error) {
	var followers []*model.Profile
	err := db.Model(&model.Profile{}).
		Joins("JOIN profile_follows ON profile_follows.follower_id = profiles.id").
		Where("profile_follows.followee_id = ?", profileID).
		Preload("User").
		Find(&followers).Error
	if err != nil {
		return nil, errors.Wrap(err, "failure listing followers")
	}
	return followers, nil
}

// IsFollowing reports whether follower currently follows followee.
func IsFollowing(db *gorm.DB, followerID string, followeeID string) (bool, error) {
	var count int64
	err := db.Model(&model.ProfileFollow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}
