//go:build unit

package api_test

import (
	"gaya-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testIdentity = user.Identity{
	ID:    uuid.New(),
	Email: "guest@example.com",
	Role:  user.RoleGuest,
}

// withTestIdentity mimics what the auth middleware does after validating a
// bearer token, so handlers under test see an authenticated caller.
func withTestIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", testIdentity)
		c.Next()
	}
}
