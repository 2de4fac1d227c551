package server

import (
	"prolink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	feed, err := s.feedService.ListFeed(c.Context(), page, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Posts fetched",
		"status":  fiber.StatusOK,
		"data":    feed.Data,
		"meta":    feed.Meta,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := s.postService.Get(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Post fetched", "post", post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusCreated, "Post created", "post", post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), currentUserID(c), postID, req.Title, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Post updated", "post", post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.postService.Delete(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Post deleted", "", nil)
}

// ReactToPost handles POST /api/posts/:id/reactions
func (s *Server) ReactToPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if err := s.reactionService.React(c.Context(), currentUserID(c), postID, req.Status); err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Reaction recorded", "", nil)
}

// GetPostAnalytics handles GET /api/posts/analytics
func (s *Server) GetPostAnalytics(c *fiber.Ctx) error {
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	report, err := s.analyticsService.PostsInRange(c.Context(), start, end)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Post analytics fetched", "data", report)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	posts, err := s.postService.ListByAuthor(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Posts fetched", "data", posts)
}
