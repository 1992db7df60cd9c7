// Package service implements the request workflows shared by every mutating
// endpoint: validate, resolve the named user, check ownership, then persist.
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

type PostService struct {
	postRepo        repository.PostRepository
	userRepo        repository.UserRepository
	defaultPageSize int
	maxPageSize     int
}

type CreatePostInput struct {
	Title      string
	Content    string
	Topic      string
	AuthorName string
}

type UpdatePostInput struct {
	PostID     uint
	Title      string
	Content    string
	Topic      string
	AuthorName string
}

type DeletePostInput struct {
	PostID     uint
	AuthorName string
}

type ListPostsInput struct {
	Topic    string
	Author   string
	Page     int
	PageSize int
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	defaultPageSize, maxPageSize int,
) *PostService {
	return &PostService{
		postRepo:        postRepo,
		userRepo:        userRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// validatePostFields applies the shared create/update rules, first failure wins.
func validatePostFields(in CreatePostInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return models.NewValidationError("標題為必填")
	}
	if !validation.ValidTitle(in.Title) {
		return models.NewValidationError("標題至少需要5個字")
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.NewValidationError("內容為必填")
	}
	if !validation.ValidPostContent(in.Content) {
		return models.NewValidationError("內容至少需要20個字")
	}
	if in.Topic == "" {
		return models.NewValidationError("請選擇文章類別")
	}
	if !models.Topic(in.Topic).Valid() {
		return models.NewValidationError("無效的文章類別")
	}
	if strings.TrimSpace(in.AuthorName) == "" {
		return models.NewValidationError("作者名稱為必填")
	}
	if !validation.ValidName(in.AuthorName) {
		return models.NewValidationError("名稱至少需要2個字")
	}
	return nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*models.PostList, error) {
	if in.Topic != "" && !models.Topic(in.Topic).Valid() {
		return nil, models.NewValidationError("無效的文章類別")
	}
	if in.Page < 1 || in.PageSize < 1 {
		return nil, models.NewValidationError("分頁參數格式錯誤")
	}

	pageSize := in.PageSize
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	posts, total, err := s.postRepo.List(ctx, repository.ListFilter{
		Topic:    models.Topic(in.Topic),
		Author:   strings.TrimSpace(in.Author),
		Page:     in.Page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	return &models.PostList{
		Posts:    posts,
		Total:    total,
		Page:     in.Page,
		PageSize: pageSize,
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("找不到該文章")
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetOrCreateByName(ctx, strings.TrimSpace(in.AuthorName))
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    strings.TrimSpace(in.Title),
		Content:  in.Content,
		Topic:    models.Topic(in.Topic),
		AuthorID: author.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, post.ID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validatePostFields(CreatePostInput{
		Title:      in.Title,
		Content:    in.Content,
		Topic:      in.Topic,
		AuthorName: in.AuthorName,
	}); err != nil {
		return nil, err
	}

	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	// Ownership: the supplied name must match the stored author exactly.
	if post.Author.Name != strings.TrimSpace(in.AuthorName) {
		return nil, models.NewForbiddenError("名稱不正確，無法編輯文章")
	}

	post.Title = strings.TrimSpace(in.Title)
	post.Content = in.Content
	post.Topic = models.Topic(in.Topic)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, in.PostID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	if strings.TrimSpace(in.AuthorName) == "" {
		return models.NewValidationError("作者名稱為必填")
	}

	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.Author.Name != strings.TrimSpace(in.AuthorName) {
		return models.NewForbiddenError("名稱不正確，無法刪除文章")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
