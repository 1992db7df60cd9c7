package service

import (
	"context"
	"errors"
	"strings"

	"travelblog/internal/models"
	"travelblog/internal/repository"
	"travelblog/internal/validation"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	PostID        uint
	Content       string
	CommenterName string
}

type DeleteCommentInput struct {
	CommentID     uint
	CommenterName string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("找不到該文章")
		}
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("留言內容為必填")
	}
	if !validation.ValidCommentContent(in.Content) {
		return nil, models.NewValidationError("留言至少需要5個字")
	}
	if strings.TrimSpace(in.CommenterName) == "" {
		return nil, models.NewValidationError("留言者名稱為必填")
	}
	if !validation.ValidName(in.CommenterName) {
		return nil, models.NewValidationError("名稱至少需要2個字")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("文章不存在，無法留言")
		}
		return nil, err
	}

	commenter, err := s.userRepo.GetOrCreateByName(ctx, strings.TrimSpace(in.CommenterName))
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:     in.Content,
		PostID:      in.PostID,
		CommenterID: commenter.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	if strings.TrimSpace(in.CommenterName) == "" {
		return models.NewValidationError("留言者名稱為必填")
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("找不到該留言")
		}
		return err
	}

	if comment.Commenter.Name != strings.TrimSpace(in.CommenterName) {
		return models.NewForbiddenError("名稱不正確，無法刪除留言")
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
