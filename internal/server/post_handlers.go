package server

import (
	"travelblog/internal/models"
	"travelblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Topic      string `json:"topic"`
	AuthorName string `json:"authorName"`
}

// GetPosts handles GET /api/posts?topic=&author=&page=&pageSize=
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", s.config.DefaultPageSize)
	// Non-numeric values: QueryInt returns the default, but an explicitly
	// malformed parameter should still read as invalid, not as the default.
	if v := c.Query("page"); v != "" && !isDigits(v) {
		return fail(c, models.NewValidationError("分頁參數格式錯誤"))
	}
	if v := c.Query("pageSize"); v != "" && !isDigits(v) {
		return fail(c, models.NewValidationError("分頁參數格式錯誤"))
	}

	list, err := s.postService.ListPosts(ctx, service.ListPostsInput{
		Topic:    c.Query("topic"),
		Author:   c.Query("author"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "成功", list)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "成功", post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("請求格式錯誤"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Topic:      req.Topic,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, "文章發布成功", post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("請求格式錯誤"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		PostID:     id,
		Title:      req.Title,
		Content:    req.Content,
		Topic:      req.Topic,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "文章更新成功", post)
}

// DeletePost handles POST /api/posts/:id/delete
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		AuthorName string `json:"authorName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("請求格式錯誤"))
	}

	if err := s.postService.DeletePost(ctx, service.DeletePostInput{
		PostID:     id,
		AuthorName: req.AuthorName,
	}); err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "文章刪除成功", nil)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
