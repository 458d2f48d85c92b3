package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/postpilot/social-scheduler-api/internal/errors"
	"github.com/postpilot/social-scheduler-api/internal/services"
)

type SocialAccountHandler struct {
	accountService *services.SocialAccountService
}

func NewSocialAccountHandler(accountService *services.SocialAccountService) *SocialAccountHandler {
	return &SocialAccountHandler{
		accountService: accountService,
	}
}

// ListAccounts returns a user's connected accounts. Optional filter: platform.
func (h *SocialAccountHandler) ListAccounts(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		apierrors.BadRequest(c, "User ID required")
		return
	}

	accounts, err := h.accountService.List(userID, c.Query("platform"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownPlatform) {
			apierrors.BadRequest(c, "Invalid platform")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// GetAccount returns a single social account by ID.
func (h *SocialAccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			apierrors.NotFound(c, "Social account not found")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, account)
}

// CreateAccount records a newly connected social account.
func (h *SocialAccountHandler) CreateAccount(c *gin.Context) {
	type CreateAccountRequest struct {
		UserID           string `json:"userId"`
		Platform         string `json:"platform"`
		PlatformUsername string `json:"platformUsername"`
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid input")
		return
	}
	if req.UserID == "" {
		apierrors.BadRequest(c, "User ID required")
		return
	}

	account, err := h.accountService.Create(req.UserID, services.CreateAccountInput{
		Platform:         req.Platform,
		PlatformUsername: req.PlatformUsername,
	})
	if err != nil {
		respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount applies a partial update to a social account.
func (h *SocialAccountHandler) UpdateAccount(c *gin.Context) {
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid input")
		return
	}

	var input services.UpdateAccountInput

	if platform, ok := rawReq["platform"]; ok {
		platformStr, ok := platform.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.Platform = &platformStr
	}
	if username, ok := rawReq["platformUsername"]; ok {
		usernameStr, ok := username.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.PlatformUsername = &usernameStr
	}
	if connected, ok := rawReq["isConnected"]; ok {
		connectedBool, ok := connected.(bool)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.IsConnected = &connectedBool
	}

	account, err := h.accountService.Update(c.Param("id"), input)
	if err != nil {
		respondAccountError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount disconnects a social account.
func (h *SocialAccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.accountService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			apierrors.NotFound(c, "Social account not found")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		apierrors.NotFound(c, "Social account not found")
	case errors.Is(err, services.ErrUnknownPlatform),
		errors.Is(err, services.ErrMissingPlatformUsername):
		apierrors.BadRequest(c, "Invalid input")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
