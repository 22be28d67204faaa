package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkuznetsov/inkwell/utils"
)

func TestToggleFollow(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	actorUser := utils.TestCreateUser(t, db, "actor")
	actor := utils.TestCreateProfile(t, db, actorUser)
	targetUser := utils.TestCreateUser(t, db, "target")
	target := utils.TestCreateProfile(t, db, targetUser)

	t.Run("Toggle twice returns to the original state", func(t *testing.T) {
		before, err := Followers(db, target.Id)
		require.NoError(t, err)
		require.Len(t, before, 0)

		result, err := ToggleFollow(db, actor.Id, target.Slug)
		require.NoError(t, err)
		require.True(t, result.Followed)
		// After following, the next available action is to unfollow.
		require.Equal(t, "Отписаться от target", result.Label)

		following, err := IsFollowing(db, actor.Id, target.Id)
		require.NoError(t, err)
		require.True(t, following)

		result, err = ToggleFollow(db, actor.Id, target.Slug)
		require.NoError(t, err)
		require.False(t, result.Followed)
		require.Equal(t, "Подписаться на target", result.Label)

		after, err := Followers(db, target.Id)
		require.NoError(t, err)
		require.Len(t, after, 0)
	})

	t.Run("Edge is directional", func(t *testing.T) {
		_, err := ToggleFollow(db, actor.Id, target.Slug)
		require.NoError(t, err)

		reverse, err := IsFollowing(db, target.Id, actor.Id)
		require.NoError(t, err)
		require.False(t, reverse)

		followers, err := Followers(db, target.Id)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		require.Equal(t, actor.Id, followers[0].Id)
	})

	t.Run("Anonymous actor", func(t *testing.T) {
		_, err := ToggleFollow(db, "", target.Slug)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Unknown target", func(t *testing.T) {
		_, err := ToggleFollow(db, actor.Id, "no-such-profile")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Self follow rejected", func(t *testing.T) {
		_, err := ToggleFollow(db, actor.Id, actor.Slug)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
