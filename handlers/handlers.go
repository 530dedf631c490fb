// handlers/handlers.go - Shared handler wiring
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cosmicclicker/middleware"
	"cosmicclicker/services"
)

// GuestCookie identifies anonymous players across requests; their saves
// live in the local store under this key.
const GuestCookie = "guest_session"

var sessions *services.SessionManager

// Init wires the session manager the game handlers dispatch into.
func Init(manager *services.SessionManager) {
	sessions = manager
}

// resolveEngine returns the running engine for the caller: the
// authenticated user's cloud-backed session, or a cookie-keyed guest
// session on the local store.
func resolveEngine(c *fiber.Ctx) *services.Engine {
	if userID, err := middleware.GetUserID(c); err == nil {
		return sessions.ForUser(userID)
	}

	key := c.Cookies(GuestCookie)
	if key == "" {
		key = uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     GuestCookie,
			Value:    key,
			HTTPOnly: true,
			SameSite: "Lax",
			MaxAge:   60 * 60 * 24 * 365,
		})
	}
	return sessions.ForGuest(key)
}
