package middlewares

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkuznetsov/inkwell/model"
	"github.com/rkuznetsov/inkwell/utils"
	"github.com/rkuznetsov/inkwell/utils/log"
)

// Context keys set by the identity middleware and read by handlers.
const (
	ContextClientKey = "client_key"
	ContextUserID    = "user_id"
	ContextProfileID = "profile_id"
)

/*
Identity resolves who is making the request, on two independent levels.

The client key is the coarse per-client identity from the forwarded-for
header or the connection address; it is always present and drives view
dedup and vote toggling. The user is optional: the upstream auth service
validates credentials and injects the account id in the "sub" header, this
middleware only resolves it to a user and profile. Requests without a valid
sub proceed anonymously.
*/
func Identity(db *gorm.DB, statusStore *utils.OnlineStatusStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextClientKey, utils.GetClientKey(c.Request.Header, c.Request.RemoteAddr))

		sub := c.Request.Header.Get("sub")
		if sub != "" {
			var user model.User
			if err := db.Where("id = ?", sub).First(&user).Error; err == nil {
				c.Set(ContextUserID, user.Id)

				var profile model.Profile
				if err := db.Where("user_id = ?", user.Id).First(&profile).Error; err == nil {
					c.Set(ContextProfileID, profile.Id)
				}

				if statusStore != nil {
					if err := statusStore.Touch(user.Id); err != nil {
						log.Log.Warn("fail to touch online status for user ", user.Id, ": ", err)
					}
				}
			}
		}

		c.Next()
	}
}

// ClientKey reads the client key the Identity middleware stored.
func ClientKey(c *gin.Context) string {
	return c.GetString(ContextClientKey)
}

// UserID returns the authenticated user id, or nil for anonymous requests.
func UserID(c *gin.Context) *string {
	id := c.GetString(ContextUserID)
	if id == "" {
		return nil
	}
	return &id
}

// ProfileID returns the authenticated user's profile id, empty when
// anonymous.
func ProfileID(c *gin.Context) string {
	return c.GetString(ContextProfileID)
}
