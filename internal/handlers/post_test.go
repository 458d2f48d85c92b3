package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postpilot/social-scheduler-api/internal/models"
	"github.com/postpilot/social-scheduler-api/internal/repository"
	"github.com/postpilot/social-scheduler-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// PostHandlerTestSuite defines the test suite for PostHandler
type PostHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *PostHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *PostHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.SocialAccount{},
		&models.Post{},
	)
	suite.Require().NoError(err)

	postRepo := repository.NewPostRepository(suite.db)
	suite.handler = NewPostHandler(services.NewPostService(postRepo))

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.GET("/api/posts", suite.handler.ListPosts)
	suite.router.POST("/api/posts", suite.handler.CreatePost)
	suite.router.GET("/api/posts/:id", suite.handler.GetPost)
	suite.router.PUT("/api/posts/:id", suite.handler.UpdatePost)
	suite.router.DELETE("/api/posts/:id", suite.handler.DeletePost)
}

// TearDownTest runs after each test
func (suite *PostHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *PostHandlerTestSuite) createTestUser(username, email string) *models.User {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *PostHandlerTestSuite) createTestPost(userID, content string, createdAt time.Time) *models.Post {
	post := &models.Post{
		UserID:    userID,
		Content:   content,
		MediaURLs: models.StringSlice{},
		Platforms: models.StringSlice{"twitter"},
		Status:    models.PostStatusDraft,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	suite.db.Create(post)
	return post
}

func (suite *PostHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreatePost_ForcesDraftStatus verifies that a supplied status is
// ignored and new posts always start as drafts with empty media.
func (suite *PostHandlerTestSuite) TestCreatePost_ForcesDraftStatus() {
	user := suite.createTestUser("jdoe", "j@x.com")

	body, _ := json.Marshal(map[string]any{
		"userId":    user.ID,
		"content":   "hello",
		"platforms": []string{"twitter"},
		"status":    "posted",
	})
	w := suite.serve("POST", "/api/posts", body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var post models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(suite.T(), models.PostStatusDraft, post.Status)
	assert.Equal(suite.T(), models.StringSlice{}, post.MediaURLs)
	assert.Equal(suite.T(), models.StringSlice{"twitter"}, post.Platforms)
	assert.Equal(suite.T(), user.ID, post.UserID)
	assert.NotEmpty(suite.T(), post.ID)
}

func (suite *PostHandlerTestSuite) TestCreatePost_UnknownPlatform() {
	user := suite.createTestUser("jdoe", "j@x.com")

	body, _ := json.Marshal(map[string]any{
		"userId":    user.ID,
		"content":   "hello",
		"platforms": []string{"myspace"},
	})
	w := suite.serve("POST", "/api/posts", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestCreatePost_MissingUserID() {
	body, _ := json.Marshal(map[string]any{
		"content":   "hello",
		"platforms": []string{"twitter"},
	})
	w := suite.serve("POST", "/api/posts", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "User ID required", response["error"])
}

// TestListPosts_NewestFirst verifies createdAt-descending ordering.
func (suite *PostHandlerTestSuite) TestListPosts_NewestFirst() {
	user := suite.createTestUser("jdoe", "j@x.com")
	base := time.Now().Add(-time.Hour)
	suite.createTestPost(user.ID, "first", base)
	suite.createTestPost(user.ID, "second", base.Add(time.Minute))

	w := suite.serve("GET", "/api/posts?userId="+user.ID, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var posts []models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Require().Len(posts, 2)
	assert.Equal(suite.T(), "second", posts[0].Content)
	assert.Equal(suite.T(), "first", posts[1].Content)
}

func (suite *PostHandlerTestSuite) TestListPosts_StatusFilter() {
	user := suite.createTestUser("jdoe", "j@x.com")
	base := time.Now().Add(-time.Hour)
	suite.createTestPost(user.ID, "draft post", base)
	scheduled := suite.createTestPost(user.ID, "scheduled post", base.Add(time.Minute))
	suite.db.Model(scheduled).Update("status", models.PostStatusScheduled)

	w := suite.serve("GET", "/api/posts?userId="+user.ID+"&status=scheduled", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var posts []models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Require().Len(posts, 1)
	assert.Equal(suite.T(), "scheduled post", posts[0].Content)
}

func (suite *PostHandlerTestSuite) TestListPosts_MissingUserID() {
	w := suite.serve("GET", "/api/posts", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestGetPost_NotFound() {
	w := suite.serve("GET", "/api/posts/no-such-id", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdatePost_PartialMerge verifies that an update carrying only
// content leaves the other fields untouched and refreshes updatedAt.
func (suite *PostHandlerTestSuite) TestUpdatePost_PartialMerge() {
	user := suite.createTestUser("jdoe", "j@x.com")
	scheduledAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	post := &models.Post{
		UserID:      user.ID,
		Content:     "original",
		MediaURLs:   models.StringSlice{"https://cdn.example.com/a.png"},
		Platforms:   models.StringSlice{"twitter", "linkedin"},
		Status:      models.PostStatusDraft,
		ScheduledAt: &scheduledAt,
		CreatedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
	suite.Require().NoError(suite.db.Create(post).Error)

	body, _ := json.Marshal(map[string]any{"content": "X"})
	w := suite.serve("PUT", "/api/posts/"+post.ID, body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(suite.T(), "X", updated.Content)
	assert.Equal(suite.T(), models.StringSlice{"https://cdn.example.com/a.png"}, updated.MediaURLs)
	assert.Equal(suite.T(), models.StringSlice{"twitter", "linkedin"}, updated.Platforms)
	suite.Require().NotNil(updated.ScheduledAt)
	assert.True(suite.T(), updated.ScheduledAt.Equal(scheduledAt))
	assert.True(suite.T(), updated.UpdatedAt.After(post.UpdatedAt))
}

// TestUpdatePost_StatusIgnored documents current behavior: the update
// endpoint silently drops a status field instead of rejecting it, and
// the stored status is untouched.
func (suite *PostHandlerTestSuite) TestUpdatePost_StatusIgnored() {
	user := suite.createTestUser("jdoe", "j@x.com")
	post := suite.createTestPost(user.ID, "hello", time.Now().Add(-time.Hour))

	body, _ := json.Marshal(map[string]any{"status": "posted"})
	w := suite.serve("PUT", "/api/posts/"+post.ID, body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(suite.T(), models.PostStatusDraft, updated.Status)
	assert.True(suite.T(), updated.UpdatedAt.After(post.UpdatedAt))
}

func (suite *PostHandlerTestSuite) TestUpdatePost_ClearScheduledAt() {
	user := suite.createTestUser("jdoe", "j@x.com")
	scheduledAt := time.Now().Add(24 * time.Hour)
	post := &models.Post{
		UserID:      user.ID,
		Content:     "hello",
		Platforms:   models.StringSlice{"twitter"},
		Status:      models.PostStatusScheduled,
		ScheduledAt: &scheduledAt,
	}
	suite.Require().NoError(suite.db.Create(post).Error)

	body := []byte(`{"scheduledAt": null}`)
	w := suite.serve("PUT", "/api/posts/"+post.ID, body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Nil(suite.T(), updated.ScheduledAt)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_NotFound() {
	body, _ := json.Marshal(map[string]any{"content": "X"})
	w := suite.serve("PUT", "/api/posts/no-such-id", body)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestDeletePost() {
	user := suite.createTestUser("jdoe", "j@x.com")
	post := suite.createTestPost(user.ID, "hello", time.Now())

	w := suite.serve("DELETE", "/api/posts/"+post.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]bool
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response["success"])

	// The post is gone afterwards.
	w = suite.serve("GET", "/api/posts/"+post.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestDeletePost_NotFound() {
	w := suite.serve("DELETE", "/api/posts/no-such-id", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
