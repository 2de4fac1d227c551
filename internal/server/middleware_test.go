package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"prolink/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_AuthRequired(t *testing.T) {
	secret := "test-secret-key-12345678901234567890123456789012"
	s := &Server{
		config: &config.Config{JWTSecret: secret},
	}
	app := fiber.New()

	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		userID := c.Locals("userID")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"userID": userID})
	})

	generateToken := func(userID uint, issuer, audience, typ string, exp time.Duration) string {
		claims := jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(userID), 10),
			"iss": issuer,
			"aud": audience,
			"typ": typ,
			"exp": time.Now().Add(exp).Unix(),
			"jti": "test-jti-valid-length",
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		str, _ := token.SignedString([]byte(secret))
		return str
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + generateToken(123, "prolink-api", "prolink-client", "access", time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + generateToken(123, "prolink-api", "prolink-client", "access", -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Issuer",
			authHeader:     "Bearer " + generateToken(123, "wrong-issuer", "prolink-client", "access", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Audience",
			authHeader:     "Bearer " + generateToken(123, "prolink-api", "wrong-audience", "access", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Refresh Token Rejected",
			authHeader:     "Bearer " + generateToken(123, "prolink-api", "prolink-client", "refresh", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Bearer Format",
			authHeader:     "BearerTokenOnly",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestServer_GenerateTokenPair_RoundTrip(t *testing.T) {
	secret := "test-secret-key-12345678901234567890123456789012"
	s := &Server{
		config: &config.Config{JWTSecret: secret},
	}

	access, refresh, err := s.generateTokenPair(42)
	require.NoError(t, err)

	decode := func(raw string) jwt.MapClaims {
		token, err := jwt.Parse(raw, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		return token.Claims.(jwt.MapClaims)
	}

	claims := decode(access)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "prolink-api", claims["iss"])
	assert.Equal(t, "prolink-client", claims["aud"])
	assert.Equal(t, "access", claims["typ"])
	assert.NotEmpty(t, claims["jti"])

	refreshClaims := decode(refresh)
	assert.Equal(t, "42", refreshClaims["sub"])
	assert.Equal(t, "refresh", refreshClaims["typ"])
	assert.Greater(t, refreshClaims["exp"].(float64), claims["exp"].(float64))
}
