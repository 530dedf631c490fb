package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmicclicker/middleware"
	"cosmicclicker/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	local, err := services.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	manager := services.NewSessionManager(local, nil, services.RealClock{})
	t.Cleanup(manager.StopAll)
	Init(manager)

	app := fiber.New()
	api := app.Group("/api", middleware.OptionalAuthMiddleware)
	gameAPI := api.Group("/game")
	gameAPI.Get("/state", GetState)
	gameAPI.Get("/catalog", GetCatalog)
	gameAPI.Get("/stats", GetStats)
	gameAPI.Post("/click", Click)
	gameAPI.Post("/upgrades/:id/buy", BuyUpgrade)
	gameAPI.Get("/prestige", PrestigeInfo)
	gameAPI.Post("/prestige", DoPrestige)
	gameAPI.Post("/username", SetUsername)
	api.Post("/auth/guest", GuestSession)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie *http.Cookie) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(blob)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func guestCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == GuestCookie {
			return c
		}
	}
	return nil
}

func TestGuestGetStateSetsCookie(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/game/state", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	cookie := guestCookie(resp)
	require.NotNil(t, cookie, "anonymous callers get a session cookie")
	assert.True(t, cookie.HttpOnly)

	state, ok := body["state"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.0, state["stardust"])
}

func TestGuestClickPersistsAcrossRequests(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/guest", nil, nil)
	cookie := guestCookie(resp)
	require.NotNil(t, cookie)

	_, body := doJSON(t, app, "POST", "/api/game/click", nil, cookie)
	state := body["state"].(map[string]any)
	assert.Equal(t, 1.0, state["stardust"])

	// same cookie, same session
	_, body = doJSON(t, app, "POST", "/api/game/click", nil, cookie)
	state = body["state"].(map[string]any)
	assert.Equal(t, 2.0, state["stardust"])
	assert.Equal(t, 2.0, state["totalClicks"])
}

func TestBuyUpgradeUnknownID(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/game/upgrades/warpDrive/buy", BuyUpgradeRequest{Bulk: 1}, nil)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestBuyUpgradeUnaffordableBuysNone(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/guest", nil, nil)
	cookie := guestCookie(resp)
	require.NotNil(t, cookie)

	httpResp, body := doJSON(t, app, "POST", "/api/game/upgrades/stellarEnhancement/buy", BuyUpgradeRequest{Bulk: 1}, cookie)
	assert.Equal(t, 200, httpResp.StatusCode, "insufficient stardust is not an error")
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 0.0, body["bought"])
}

func TestBuyUpgradeAfterEarning(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/guest", nil, nil)
	cookie := guestCookie(resp)
	require.NotNil(t, cookie)

	for i := 0; i < 20; i++ {
		doJSON(t, app, "POST", "/api/game/click", nil, cookie)
	}

	// 20 stardust buys one level of the 15-cost starter upgrade
	_, body := doJSON(t, app, "POST", "/api/game/upgrades/stellarEnhancement/buy", BuyUpgradeRequest{Bulk: 1}, cookie)
	assert.Equal(t, 1.0, body["bought"])
	state := body["state"].(map[string]any)
	assert.Equal(t, 5.0, state["stardust"])
	assert.Equal(t, 3.0, state["clickPower"])
}

func TestSetUsernameValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name     string
		username string
		status   int
	}{
		{"valid", "nova_7", 200},
		{"too short", "ab", 400},
		{"too long", "abcdefghijklmnopqrstu", 400},
		{"invalid characters", "bad name!", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, "POST", "/api/game/username", UsernameRequest{Username: tt.username}, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestPrestigeBelowThreshold(t *testing.T) {
	app := newTestApp(t)

	_, info := doJSON(t, app, "GET", "/api/game/prestige", nil, nil)
	assert.Equal(t, 0.0, info["gain"])

	_, body := doJSON(t, app, "POST", "/api/game/prestige", nil, nil)
	assert.Equal(t, 0.0, body["gained"])
}

func TestGetCatalog(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/game/catalog", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)

	upgrades, ok := body["upgrades"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, upgrades, 12)

	stellar := upgrades["stellarEnhancement"].(map[string]any)
	assert.Equal(t, 15.0, stellar["cost"])

	achievements, ok := body["achievements"].([]any)
	require.True(t, ok)
	assert.Len(t, achievements, 4)
}

func TestGetStats(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/guest", nil, nil)
	cookie := guestCookie(resp)
	require.NotNil(t, cookie)

	doJSON(t, app, "POST", "/api/game/click", nil, cookie)
	_, body := doJSON(t, app, "GET", "/api/game/stats", nil, cookie)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, 1.0, stats["total_clicks"])
}
