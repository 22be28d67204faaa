package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// OnlineStatusStore keeps a per-user last-seen marker with a fixed TTL. A
// user is online while the marker exists. The store is injected explicitly
// into whoever needs the check, there is no ambient process-wide cache.
type OnlineStatusStore struct {
	inner     *redis.Client
	keyParser StatusKeyParser
	ttl       time.Duration
}

const (
	// Redis only has string type, there is no boolean or int, so we use "1" to represent true
	RedisTrue = "1"

	// OnlineTTL is how long a user counts as online after the last touch.
	OnlineTTL = 300 * time.Second
)

var ctx = context.Background()

func GetOnlineStatusStore() (*OnlineStatusStore, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWD"),
		DB:       0, // use default DB
	})
	_, err := redisClient.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	return &OnlineStatusStore{
		inner:     redisClient,
		keyParser: StatusKeyParser{delimiter: "__"},
		ttl:       OnlineTTL,
	}, nil
}

type StatusKeyParser struct {
	delimiter string
}

func (p StatusKeyParser) ValidateId(id string) bool {
	return !strings.Contains(id, p.delimiter)
}

func (p StatusKeyParser) EncodeLastSeenKey(userId string) (string, error) {
	if !p.ValidateId(userId) {
		return "", fmt.Errorf("invalid userId: %s", userId)
	}
	return fmt.Sprintf("last-seen%s%s", p.delimiter, userId), nil
}

// Touch refreshes the user's last-seen marker, restarting the TTL window.
func (s *OnlineStatusStore) Touch(userId string) error {
	key, err := s.keyParser.EncodeLastSeenKey(userId)
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, RedisTrue, s.ttl).Err()
}

// IsOnline reports whether the user touched the store within the TTL.
func (s *OnlineStatusStore) IsOnline(userId string) (bool, error) {
	key, err := s.keyParser.EncodeLastSeenKey(userId)
	if err != nil {
		return false, err
	}
	n, err := s.inner.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
