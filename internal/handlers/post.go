package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/postpilot/social-scheduler-api/internal/errors"
	"github.com/postpilot/social-scheduler-api/internal/services"
	"github.com/postpilot/social-scheduler-api/internal/utils"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts returns a user's posts, newest first.
// Optional filters: status, page/limit.
func (h *PostHandler) ListPosts(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		apierrors.BadRequest(c, "User ID required")
		return
	}

	var params *utils.PaginationParams
	if c.Query("page") != "" || c.Query("limit") != "" {
		p := utils.GetPaginationParams(c)
		params = &p
	}

	posts, err := h.postService.List(userID, c.Query("status"), params)
	if err != nil {
		if errors.Is(err, services.ErrUnknownStatus) {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post by ID.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "Post not found")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post. Status is server-forced to draft; any
// status value in the body is ignored.
func (h *PostHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		UserID      string     `json:"userId"`
		Content     string     `json:"content"`
		MediaURLs   []string   `json:"mediaUrls"`
		Platforms   []string   `json:"platforms"`
		ScheduledAt *time.Time `json:"scheduledAt"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid input")
		return
	}
	if req.UserID == "" {
		apierrors.BadRequest(c, "User ID required")
		return
	}

	post, err := h.postService.Create(req.UserID, services.CreatePostInput{
		Content:     req.Content,
		MediaURLs:   req.MediaURLs,
		Platforms:   req.Platforms,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost applies a partial update. Only content, mediaUrls,
// platforms, and scheduledAt are honored; other fields are ignored.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid input")
		return
	}

	var input services.UpdatePostInput

	if content, ok := rawReq["content"]; ok {
		contentStr, ok := content.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.Content = &contentStr
	}
	if media, ok := rawReq["mediaUrls"]; ok {
		urls, ok := toStringSlice(media)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.MediaURLs = &urls
	}
	if platforms, ok := rawReq["platforms"]; ok {
		ids, ok := toStringSlice(platforms)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.Platforms = &ids
	}
	if scheduledAt, ok := rawReq["scheduledAt"]; ok {
		// scheduledAt was provided (might be null to clear the schedule)
		input.ScheduledAtSet = true
		if scheduledAt != nil {
			scheduledAtStr, ok := scheduledAt.(string)
			if !ok {
				apierrors.BadRequest(c, "Invalid input")
				return
			}
			parsed, err := time.Parse(time.RFC3339, scheduledAtStr)
			if err != nil {
				apierrors.BadRequest(c, "Invalid input")
				return
			}
			input.ScheduledAt = &parsed
		}
	}

	post, err := h.postService.Update(c.Param("id"), input)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "Post not found")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, "Post not found")
	case errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrNoPlatforms),
		errors.Is(err, services.ErrUnknownPlatform):
		apierrors.BadRequest(c, "Invalid input")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

// toStringSlice coerces a decoded JSON array into []string.
func toStringSlice(value any) ([]string, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
