package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusKeyParser(t *testing.T) {
	p := StatusKeyParser{delimiter: "__"}

	assert.True(t, p.ValidateId("valid-user-id"))
	assert.False(t, p.ValidateId("invalid__user_id"))

	k, err := p.EncodeLastSeenKey("valid-user-id")
	assert.Nil(t, err)
	assert.Equal(t, "last-seen__valid-user-id", k)

	_, err = p.EncodeLastSeenKey("invalid__id")
	assert.NotNil(t, err)
}

func TestOnlineStatusStore(t *testing.T) {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("no redis configured")
	}

	store, err := GetOnlineStatusStore()
	assert.Nil(t, err)

	userId := "online-user"
	wrongId := "offline-user"

	assert.Nil(t, store.Touch(userId))

	online, err := store.IsOnline(userId)
	assert.Nil(t, err)
	assert.True(t, online)

	online, err = store.IsOnline(wrongId)
	assert.Nil(t, err)
	assert.False(t, online)
}
