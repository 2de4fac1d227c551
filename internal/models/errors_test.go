package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("Error fetching posts", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Error fetching posts")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusInternalServerError, appErr.StatusCode)
}

func TestRespondWithError(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return RespondWithError(c, NewNotFoundError("Post not found"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return RespondWithError(c, errors.New("raw database error"))
	})

	t.Run("domain condition keeps its envelope", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body ErrorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Post not found", body.Message)
		assert.Equal(t, http.StatusNotFound, body.StatusCode)
	})

	t.Run("unexpected fault never leaks its cause", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body ErrorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body.Message)
	})
}

func TestValidReactionStatus(t *testing.T) {
	assert.True(t, ValidReactionStatus(ReactionLike))
	assert.True(t, ValidReactionStatus(ReactionDislike))
	assert.True(t, ValidReactionStatus(ReactionNeutral))
	assert.False(t, ValidReactionStatus("like"))
	assert.False(t, ValidReactionStatus(""))
	assert.False(t, ValidReactionStatus("Love"))
}
