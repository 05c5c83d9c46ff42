package service

import (
	"context"
	"errors"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type mockUserRepository struct {
	findByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	createFunc         func(ctx context.Context, user *models.User) error
	updateFunc         func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errors.New("not implemented")
}

type mockPostRepository struct {
	createFunc     func(ctx context.Context, post *models.Post) error
	findByIDFunc   func(ctx context.Context, id int64) (*models.Post, error)
	listRecentFunc func(ctx context.Context, limit int) ([]models.Post, error)
	listByUserFunc func(ctx context.Context, userID int64) ([]models.Post, error)
	listFeedFunc   func(ctx context.Context, authorIDs []int64, limit, offset int) ([]models.Post, error)
	listRangeFunc  func(ctx context.Context, offset, limit int) ([]models.Post, error)
	countAllFunc   func(ctx context.Context) (int64, error)
	deleteFunc     func(ctx context.Context, id int64) error
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return errors.New("not implemented")
}

func (m *mockPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) ListRecent(ctx context.Context, limit int) ([]models.Post, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) ListFeed(ctx context.Context, authorIDs []int64, limit, offset int) ([]models.Post, error) {
	if m.listFeedFunc != nil {
		return m.listFeedFunc(ctx, authorIDs, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) ListRange(ctx context.Context, offset, limit int) ([]models.Post, error) {
	if m.listRangeFunc != nil {
		return m.listRangeFunc(ctx, offset, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostRepository) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFunc != nil {
		return m.countAllFunc(ctx)
	}
	return 0, errors.New("not implemented")
}

func (m *mockPostRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockCommentRepository struct {
	createFunc           func(ctx context.Context, comment *models.Comment) error
	findByIDFunc         func(ctx context.Context, id int64) (*models.Comment, error)
	listByPostFunc       func(ctx context.Context, postID int64) ([]models.Comment, error)
	listRecentByPostFunc func(ctx context.Context, postID int64, limit int) ([]models.Comment, error)
	countByPostFunc      func(ctx context.Context, postID int64) (int64, error)
	deleteFunc           func(ctx context.Context, id int64) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, comment)
	}
	return errors.New("not implemented")
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listByPostFunc != nil {
		return m.listByPostFunc(ctx, postID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) ListRecentByPost(ctx context.Context, postID int64, limit int) ([]models.Comment, error) {
	if m.listRecentByPostFunc != nil {
		return m.listRecentByPostFunc(ctx, postID, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	if m.countByPostFunc != nil {
		return m.countByPostFunc(ctx, postID)
	}
	return 0, errors.New("not implemented")
}

func (m *mockCommentRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockLikeRepository struct {
	createFunc      func(ctx context.Context, userID, postID int64) error
	deleteFunc      func(ctx context.Context, userID, postID int64) error
	listByPostFunc  func(ctx context.Context, postID int64) ([]models.Like, error)
	countByPostFunc func(ctx context.Context, postID int64) (int64, error)
}

func (m *mockLikeRepository) Create(ctx context.Context, userID, postID int64) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, postID)
	}
	return errors.New("not implemented")
}

func (m *mockLikeRepository) Delete(ctx context.Context, userID, postID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, postID)
	}
	return errors.New("not implemented")
}

func (m *mockLikeRepository) ListByPost(ctx context.Context, postID int64) ([]models.Like, error) {
	if m.listByPostFunc != nil {
		return m.listByPostFunc(ctx, postID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockLikeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	if m.countByPostFunc != nil {
		return m.countByPostFunc(ctx, postID)
	}
	return 0, errors.New("not implemented")
}

type mockFollowRepository struct {
	createFunc           func(ctx context.Context, followerID, followingID int64) error
	deleteFunc           func(ctx context.Context, followerID, followingID int64) error
	listFollowersFunc    func(ctx context.Context, userID int64) ([]models.Follow, error)
	listFollowingFunc    func(ctx context.Context, userID int64) ([]models.Follow, error)
	listFollowingIDsFunc func(ctx context.Context, userID int64) ([]int64, error)
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, followerID, followingID)
	}
	return errors.New("not implemented")
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, followerID, followingID)
	}
	return errors.New("not implemented")
}

func (m *mockFollowRepository) ListFollowers(ctx context.Context, userID int64) ([]models.Follow, error) {
	if m.listFollowersFunc != nil {
		return m.listFollowersFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFollowRepository) ListFollowing(ctx context.Context, userID int64) ([]models.Follow, error) {
	if m.listFollowingFunc != nil {
		return m.listFollowingFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFollowRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.listFollowingIDsFunc != nil {
		return m.listFollowingIDsFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}
