package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/config"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/handlers"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testOrigin = "http://localhost:5173"

// newTestServer wires the full stack against in-memory sqlite and
// miniredis, so requests exercise the same path production traffic takes.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		JWTSecret:      "test-secret-key-at-least-32-bytes-long",
		JWTExpiry:      time.Hour,
		Environment:    "development",
		AllowedOrigins: []string{testOrigin},
		Cookie:         config.CookieConfig{Path: "/", SameSite: http.SameSiteLaxMode},
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	likeCounter := service.NewLikeCounter(likeRepo, redisClient)

	respond := handlers.Responder{Development: true}
	cookies := handlers.NewCookieHelper(cfg.Cookie)

	h := Handlers{
		Auth:    handlers.NewAuthHandler(service.NewAuthService(userRepo, tokens), tokens, cookies, respond),
		User:    handlers.NewUserHandler(service.NewUserService(userRepo), respond),
		Post:    handlers.NewPostHandler(service.NewPostService(postRepo, commentRepo, likeRepo, userRepo, likeCounter), respond),
		Comment: handlers.NewCommentHandler(service.NewCommentService(commentRepo, postRepo, userRepo), respond),
		Like:    handlers.NewLikeHandler(service.NewLikeService(likeRepo, postRepo, likeCounter), respond),
		Follow:  handlers.NewFollowHandler(service.NewFollowService(followRepo, userRepo), respond),
		Feed:    handlers.NewFeedHandler(service.NewFeedService(postRepo, followRepo, commentRepo, likeCounter, redisClient), respond),
		Health:  handlers.NewHealthHandler(db, redisClient),
	}

	router := gin.New()
	Setup(router, h, tokens, cfg, nil)
	return router
}

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *handlers.ErrorBody `json:"error"`
}

func request(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", testOrigin)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\nbody: %s", err, w.Body.String())
	}
	return env
}

func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := request(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "secret123",
		"full_name": username,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d\nbody: %s", username, w.Code, w.Body.String())
	}

	env := decode(t, w)
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil || resp.Token == "" {
		t.Fatalf("register %s: no token in response: %s", username, w.Body.String())
	}
	return resp.Token
}

func createPost(t *testing.T, router *gin.Engine, token, caption string) int64 {
	t.Helper()

	w := request(router, http.MethodPost, "/api/v1/posts", token, gin.H{
		"image_url": "https://img.example.com/p.jpg",
		"caption":   caption,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post: status = %d\nbody: %s", w.Code, w.Body.String())
	}

	env := decode(t, w)
	var post struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &post); err != nil || post.ID == 0 {
		t.Fatalf("create post: no id in response: %s", w.Body.String())
	}
	return post.ID
}

func TestOwnershipPipeline_PostDeletion(t *testing.T) {
	router := newTestServer(t)

	aliceToken := registerUser(t, router, "alice")
	bobToken := registerUser(t, router, "bob")

	postID := createPost(t, router, aliceToken, "hello")
	path := fmt.Sprintf("/api/v1/posts/%d", postID)

	// No credentials: rejected before the post is even looked at.
	if w := request(router, http.MethodDelete, path, "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated delete: status = %d, want 401", w.Code)
	}

	// Bob is authenticated but not the owner.
	w := request(router, http.MethodDelete, path, bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-owner delete: status = %d, want 403\nbody: %s", w.Code, w.Body.String())
	}

	// The failed attempts changed nothing.
	if w := request(router, http.MethodGet, path, bobToken, nil); w.Code != http.StatusOK {
		t.Fatalf("post should survive denied deletes, got %d", w.Code)
	}

	// The owner may delete.
	if w := request(router, http.MethodDelete, path, aliceToken, nil); w.Code != http.StatusOK {
		t.Fatalf("owner delete: status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	if w := request(router, http.MethodGet, path, aliceToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("deleted post fetch: status = %d, want 404", w.Code)
	}
}

func TestCommentDeletion_DualOwnership(t *testing.T) {
	router := newTestServer(t)

	aliceToken := registerUser(t, router, "alice")
	bobToken := registerUser(t, router, "bob")
	carolToken := registerUser(t, router, "carol")

	postID := createPost(t, router, aliceToken, "discuss")

	// Bob comments on Alice's post.
	w := request(router, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", postID), bobToken, gin.H{
		"content": "nice shot",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create comment: status = %d\nbody: %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	var comment struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &comment); err != nil || comment.ID == 0 {
		t.Fatalf("create comment: no id: %s", w.Body.String())
	}
	path := fmt.Sprintf("/api/v1/comments/%d", comment.ID)

	// Carol is neither the author nor the post owner.
	if w := request(router, http.MethodDelete, path, carolToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("bystander delete: status = %d, want 403", w.Code)
	}

	// The post owner may remove comments under their post.
	if w := request(router, http.MethodDelete, path, aliceToken, nil); w.Code != http.StatusOK {
		t.Fatalf("post owner delete: status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
}

func TestLikes_IdempotencyOverHTTP(t *testing.T) {
	router := newTestServer(t)

	aliceToken := registerUser(t, router, "alice")
	bobToken := registerUser(t, router, "bob")

	postID := createPost(t, router, aliceToken, "likeable")
	path := fmt.Sprintf("/api/v1/posts/%d/likes", postID)

	if w := request(router, http.MethodPost, path, bobToken, nil); w.Code != http.StatusCreated {
		t.Fatalf("first like: status = %d, want 201", w.Code)
	}
	if w := request(router, http.MethodPost, path, bobToken, nil); w.Code != http.StatusConflict {
		t.Fatalf("second like: status = %d, want 409", w.Code)
	}

	// The duplicate attempt must not inflate the count.
	w := request(router, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/likes", postID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list likes: status = %d", w.Code)
	}
	env := decode(t, w)
	var listing struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("listing decode: %v", err)
	}
	if listing.Count != 1 {
		t.Errorf("like count = %d, want 1", listing.Count)
	}

	if w := request(router, http.MethodDelete, path, bobToken, nil); w.Code != http.StatusOK {
		t.Fatalf("unlike: status = %d, want 200", w.Code)
	}
	if w := request(router, http.MethodDelete, path, bobToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("second unlike: status = %d, want 404", w.Code)
	}
}

func TestExplore_WraparoundOverHTTP(t *testing.T) {
	router := newTestServer(t)

	aliceToken := registerUser(t, router, "alice")
	for i := 0; i < 4; i++ {
		createPost(t, router, aliceToken, fmt.Sprintf("post %d", i))
	}

	// 4 posts at 3 per page: page 2 wraps around instead of coming up short.
	w := request(router, http.MethodGet, "/api/v1/explore?page=2&limit=3", aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("explore: status = %d\nbody: %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	var page struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("page decode: %v", err)
	}
	if len(page.Items) != 3 {
		t.Errorf("page 2 items = %d, want full page of 3", len(page.Items))
	}
	if page.Total != 4 {
		t.Errorf("total = %d, want 4", page.Total)
	}
}

func TestCSRF_BlocksForeignOrigins(t *testing.T) {
	router := newTestServer(t)

	body, _ := json.Marshal(gin.H{
		"username":  "mallory",
		"email":     "mallory@example.com",
		"password":  "secret123",
		"full_name": "Mallory",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin: status = %d, want 403", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := request(router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
}
