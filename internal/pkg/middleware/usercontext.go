package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/internal/pkg/constants"
	"github.com/elaralabs/elara/internal/pkg/session"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a UserContext for every
// request. The webhook route is skipped: it is authenticated by the provider
// signature, not by a browser session, and must not set cookies.
func UserContextMiddleware(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), constants.WebhookRoute) {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	email := session.GetSessionValue(c, usercontext.KeyUserEmail)

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Email:      email,
		IsLoggedIn: true,
		Plan:       session.GetSessionValue(c, usercontext.KeyUserPlan),
	}
	c.Locals(usercontext.KeyUserContext, userCtx)
	c.Locals(usercontext.KeyFromProtected, true)

	return c.Next()
}
