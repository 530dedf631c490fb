// handlers/ws.go - Live state stream over websocket
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"cosmicclicker/middleware"
	"cosmicclicker/services"
)

// StreamUpgrade gates the /ws routes to websocket upgrade requests and
// resolves the caller's engine before the protocol switch. Browsers
// cannot set headers on websocket requests, so the JWT is accepted as a
// `token` query parameter.
func StreamUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	if token := c.Query("token"); token != "" {
		claims, ferr := middleware.ParseToken(token)
		if ferr != nil {
			return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
		}
		c.Locals("userId", claims["user_id"])
	}

	c.Locals("engine", resolveEngine(c))
	return c.Next()
}

// StateStream pushes the full snapshot to the client on every state
// change. Slow readers skip intermediate snapshots rather than stall the
// game loop.
var StateStream = websocket.New(func(conn *websocket.Conn) {
	defer conn.Close()

	engine, ok := conn.Locals("engine").(*services.Engine)
	if !ok {
		return
	}

	updates, cancel := engine.Subscribe()
	defer cancel()

	if err := conn.WriteJSON(engine.Snapshot()); err != nil {
		return
	}
	for snap := range updates {
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}
})
