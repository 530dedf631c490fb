// handlers/auth.go - Registration, login and session endpoints
package handlers

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cosmicclicker/database"
	"cosmicclicker/game"
	"cosmicclicker/middleware"
	"cosmicclicker/models"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token,omitempty"`
	User    UserInfo `json:"user,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type UserInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsGuest   bool      `json:"is_guest"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestSession mints a guest session key so anonymous players keep their
// local save across visits. No account row is created.
func GuestSession(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{
		"success":     true,
		"session_key": key,
	})
}

// Register creates a new account and starts its cloud-backed game session.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if !database.Initialized() {
		return c.Status(503).JSON(AuthResponse{
			Success: false,
			Error:   "Accounts require a configured database",
		})
	}

	if !usernameRegex.MatchString(req.Username) {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username must be 3-20 characters, alphanumeric or underscore",
		})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Password must be at least 8 characters",
		})
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(409).JSON(AuthResponse{
			Success: false,
			Error:   "Username is already taken",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create account",
		})
	}

	user := models.User{
		Username:  req.Username,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create account",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	// Start the session and stamp the account name into the game state so
	// leaderboard rows carry it.
	engine := sessions.ForUser(user.ID)
	engine.Dispatch(game.SetUsername{Name: user.Username})

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(user),
	})
}

// Login authenticates a registered user and starts their game session.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password are required",
		})
	}

	if !database.Initialized() {
		return c.Status(503).JSON(AuthResponse{
			Success: false,
			Error:   "Accounts require a configured database",
		})
	}
	db := database.GetDB()

	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid username or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid username or password",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	db.Model(&user).Update("last_login", time.Now())

	engine := sessions.ForUser(user.ID)
	if snap := engine.Snapshot(); snap.Username != user.Username {
		engine.Dispatch(game.SetUsername{Name: user.Username})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(user),
	})
}

// Logout swaps the session's persistence target from cloud to local so
// play continues uninterrupted without the authenticated scope.
func Logout(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Unauthorized",
		})
	}

	sessions.Logout(userID)

	return c.JSON(fiber.Map{"success": true})
}

func userInfo(user models.User) UserInfo {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	return UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     email,
		IsGuest:   user.IsGuest,
		CreatedAt: user.CreatedAt,
	}
}

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "cosmicclicker-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_guest": user.IsGuest,
		"exp":      time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
