package server

import (
	"travelblog/internal/models"
	"travelblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(ctx, postID)
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "成功", comments)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content       string `json:"content"`
		CommenterName string `json:"commenterName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("請求格式錯誤"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		PostID:        postID,
		Content:       req.Content,
		CommenterName: req.CommenterName,
	})
	if err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, "留言發布成功", comment)
}

// DeleteComment handles POST /api/comments/:id/delete
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		CommenterName string `json:"commenterName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("請求格式錯誤"))
	}

	if err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		CommentID:     commentID,
		CommenterName: req.CommenterName,
	}); err != nil {
		return fail(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "留言刪除成功", nil)
}
