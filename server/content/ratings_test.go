package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkuznetsov/inkwell/utils"
)

func TestCastVoteToggle(t *testing.T) {
	db, _ := utils.CreateTempDB(t)

	author := utils.TestCreateUser(t, db, "vote_author")
	voter := utils.TestCreateUser(t, db, "voter")
	article := utils.TestCreateArticle(t, db, author, "Rated article")
	clientKey := "203.0.113.7"

	t.Run("First vote creates", func(t *testing.T) {
		result, err := CastVote(db, article.Id, clientKey, &voter.Id, 1)
		require.NoError(t, err)
		require.Equal(t, VoteCreated, result.Status)
		require.Equal(t, 1, result.RatingSum)
	})

	t.Run("Same vote again retracts", func(t *testing.T) {
		result, err := CastVote(db, article.Id, clientKey, &voter.Id, 1)
		require.NoError(t, err)
		require.Equal(t, VoteDeleted, result.Status)
		require.Equal(t, 0, result.RatingSum)
	})

	t.Run("Changed vote updates", func(t *testing.T) {
		result, err := CastVote(db, article.Id, clientKey, &voter.Id, 1)
		require.NoError(t, err)
		require.Equal(t, VoteCreated, result.Status)

		result, err = CastVote(db, article.Id, clientKey, &voter.Id, -1)
		require.NoError(t, err)
		require.Equal(t, VoteUpdated, result.Status)
		require.Equal(t, -1, result.RatingSum)
	})

	t.Run("Sum aggregates across clients", func(t *testing.T) {
		// The existing -1 from the previous subtest plus two +1 votes.
		result, err := CastVote(db, article.Id, "198.51.100.4", nil, 1)
		require.NoError(t, err)
		require.Equal(t, VoteCreated, result.Status)

		result, err = CastVote(db, article.Id, "198.51.100.5", nil, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.RatingSum)
	})

	t.Run("Anonymous vote carries no attribution", func(t *testing.T) {
		result, err := CastVote(db, article.Id, "192.0.2.33", nil, 1)
		require.NoError(t, err)
		require.Equal(t, VoteCreated, result.Status)
	})

	t.Run("Invalid value", func(t *testing.T) {
		_, err := CastVote(db, article.Id, clientKey, nil, 0)
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = CastVote(db, article.Id, clientKey, nil, 5)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown article", func(t *testing.T) {
		_, err := CastVote(db, "no-such-article", clientKey, nil, 1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Empty client key", func(t *testing.T) {
		_, err := CastVote(db, article.Id, "", nil, 1)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
