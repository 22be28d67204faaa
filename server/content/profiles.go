package content

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
	"github.com/rkuznetsov/inkwell/utils"
)

/*
CreateDefaultProfile creates the empty profile for a freshly registered
user. The registration workflow calls this synchronously right after
inserting the user row; profile creation is an explicit step, not a side
effect of saving a user.

The slug derives from the username and is disambiguated the same way
article slugs are.
*/
func CreateDefaultProfile(db *gorm.DB, userID string) (*model.Profile, error) {
	var user model.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "user %s", userID)
		}
		return nil, errors.Wrap(err, "failure looking up user")
	}

	var existing model.Profile
	lookup := db.Where("user_id = ?", userID).First(&existing)
	if lookup.Error == nil {
		return &existing, nil
	}
	if !errors.Is(lookup.Error, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(lookup.Error, "failure looking up profile")
	}

	profileSlug, err := utils.UniqueSlugify(db, "profiles", user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failure building profile slug")
	}
	profile := model.Profile{
		Id:     uuid.New().String(),
		UserID: userID,
		Slug:   profileSlug,
	}
	if err := db.Create(&profile).Error; err != nil {
		if isUniqueViolation(err) {
			// Raced with another registration request for the same user,
			// return the row that won.
			if rereadErr := db.Where("user_id = ?", userID).First(&existing).Error; rereadErr == nil {
				return &existing, nil
			}
		}
		return nil, errors.Wrap(err, "failure creating profile")
	}
	return &profile, nil
}

// GetProfileBySlug loads a profile with its user for the detail page.
func GetProfileBySlug(db *gorm.DB, slug string) (*model.Profile, error) {
	var profile model.Profile
	err := db.Preload("User").Preload("Following").Preload("Following.User").
		Where("slug = ?", slug).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "profile %s", slug)
		}
		return nil, errors.Wrap(err, "failure looking up profile")
	}
	return &profile, nil
}

// IsProfileOnline checks the injected status store for the profile's user.
// A user is online for utils.OnlineTTL after their last touched request.
func IsProfileOnline(store *utils.OnlineStatusStore, profile *model.Profile) (bool, error) {
	return store.IsOnline(profile.UserID)
}
