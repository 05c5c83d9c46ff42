package service

import (
	"context"
	"time"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
)

const previewCommentCount = 2

// CommentResponse is the wire shape of a comment with its author summary.
type CommentResponse struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	User      models.UserSummary `json:"user"`
}

// PostResponse is the wire shape of a post with author, counters and a
// comment preview. Likes are populated only on single-post reads.
type PostResponse struct {
	ID           int64                `json:"id"`
	User         models.UserSummary   `json:"user"`
	ImageURL     string               `json:"image_url"`
	Caption      string               `json:"caption"`
	CreatedAt    time.Time            `json:"created_at"`
	LikeCount    int64                `json:"like_count"`
	CommentCount int64                `json:"comment_count"`
	Comments     []CommentResponse    `json:"comments,omitempty"`
	Likes        []models.UserSummary `json:"likes,omitempty"`
}

// PostService implements post CRUD with sole-owner deletion.
type PostService interface {
	Create(ctx context.Context, subjectID int64, caption, imageURL string) (*PostResponse, error)
	Get(ctx context.Context, id int64) (*PostResponse, error)
	ListRecent(ctx context.Context, limit int) ([]PostResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]PostResponse, error)
	Delete(ctx context.Context, principal *Principal, id int64) error
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
	likeCounter *LikeCounter
}

// NewPostService creates a new PostService instance.
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	likeCounter *LikeCounter,
) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		likeCounter: likeCounter,
	}
}

func (s *postService) Create(ctx context.Context, subjectID int64, caption, imageURL string) (*PostResponse, error) {
	author, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   subjectID,
		ImageURL: imageURL,
		Caption:  caption,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return &PostResponse{
		ID:        post.ID,
		User:      author.Summary(),
		ImageURL:  post.ImageURL,
		Caption:   post.Caption,
		CreatedAt: post.CreatedAt,
	}, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := s.decorate(ctx, post, 0)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Comments = commentResponses(comments)

	likes, err := s.likeRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Likes = make([]models.UserSummary, 0, len(likes))
	for i := range likes {
		resp.Likes = append(resp.Likes, likes[i].User.Summary())
	}

	return resp, nil
}

func (s *postService) ListRecent(ctx context.Context, limit int) ([]PostResponse, error) {
	posts, err := s.postRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, posts, previewCommentCount)
}

func (s *postService) ListByUser(ctx context.Context, userID int64) ([]PostResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, posts, 0)
}

// Delete removes a post after the sole-owner check. Load runs before
// authorize: an unknown post is 404 regardless of who asks.
func (s *postService) Delete(ctx context.Context, principal *Principal, id int64) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := Authorize(principal, post.UserID, 0, SoleOwner); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.likeCounter.Invalidate(ctx, id)
	return nil
}

func (s *postService) decorateAll(ctx context.Context, posts []models.Post, previewComments int) ([]PostResponse, error) {
	return decoratePosts(ctx, posts, s.commentRepo, s.likeCounter, previewComments)
}

func (s *postService) decorate(ctx context.Context, post *models.Post, previewComments int) (*PostResponse, error) {
	return decoratePost(ctx, post, s.commentRepo, s.likeCounter, previewComments)
}

func decoratePosts(
	ctx context.Context,
	posts []models.Post,
	commentRepo repository.CommentRepository,
	likeCounter *LikeCounter,
	previewComments int,
) ([]PostResponse, error) {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		resp, err := decoratePost(ctx, &posts[i], commentRepo, likeCounter, previewComments)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func decoratePost(
	ctx context.Context,
	post *models.Post,
	commentRepo repository.CommentRepository,
	likeCounter *LikeCounter,
	previewComments int,
) (*PostResponse, error) {
	likeCount, err := likeCounter.Count(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	commentCount, err := commentRepo.CountByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	resp := &PostResponse{
		ID:           post.ID,
		User:         post.User.Summary(),
		ImageURL:     post.ImageURL,
		Caption:      post.Caption,
		CreatedAt:    post.CreatedAt,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}

	if previewComments > 0 {
		comments, err := commentRepo.ListRecentByPost(ctx, post.ID, previewComments)
		if err != nil {
			return nil, err
		}
		resp.Comments = commentResponses(comments)
	}

	return resp, nil
}

func commentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		out = append(out, CommentResponse{
			ID:        c.ID,
			PostID:    c.PostID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			User:      c.User.Summary(),
		})
	}
	return out
}
