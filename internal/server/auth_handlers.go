package server

import (
	"fmt"
	"strconv"
	"time"

	"prolink/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, models.NewValidationError("Username, email, and password are required"))
	}

	user, err := s.userService.Register(c.Context(), req.Username, req.Email, req.Password, req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	access, refresh, err := s.generateTokenPair(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError("Error generating token", err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "User created",
		"status":        fiber.StatusCreated,
		"token":         access,
		"refresh_token": refresh,
		"user":          user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	access, refresh, err := s.generateTokenPair(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError("Error generating token", err))
	}

	return c.JSON(fiber.Map{
		"message":       "Login successful",
		"status":        fiber.StatusOK,
		"token":         access,
		"refresh_token": refresh,
		"user":          user,
	})
}

// Refresh handles POST /api/auth/refresh. It exchanges a valid refresh token
// for a fresh token pair, so an expired access token is recoverable without
// re-sending credentials.
func (s *Server) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return models.RespondWithError(c, models.NewValidationError("Refresh token is required"))
	}

	userID, err := s.parseRefreshToken(req.RefreshToken)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	access, refresh, err := s.generateTokenPair(userID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError("Error generating token", err))
	}

	return c.JSON(fiber.Map{
		"message":       "Token refreshed",
		"status":        fiber.StatusOK,
		"token":         access,
		"refresh_token": refresh,
	})
}

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// generateTokenPair issues a short-lived access token and a longer-lived
// refresh token for the given user ID.
func (s *Server) generateTokenPair(userID uint) (string, string, error) {
	access, err := s.signToken(userID, "access", accessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.signToken(userID, "refresh", refreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *Server) signToken(userID uint, typ string, ttl time.Duration) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "prolink-api",
		"aud": "prolink-client",
		"typ": typ,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// parseRefreshToken validates a refresh token and returns its subject. Access
// tokens are rejected here, the same way AuthRequired rejects refresh tokens.
func (s *Server) parseRefreshToken(raw string) (uint, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}
	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "prolink-api" {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "prolink-client" {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}
	if typ, typOk := claims["typ"].(string); !typOk || typ != "refresh" {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid or expired refresh token")
	}
	return uint(userID), nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
