package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postpilot/social-scheduler-api/internal/dto"
	apierrors "github.com/postpilot/social-scheduler-api/internal/errors"
	"github.com/postpilot/social-scheduler-api/internal/services"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// GetUser returns a user's profile, without the password hash.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.authService.GetUser(c.Param("id"))
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial profile update. A supplied password is
// re-hashed before storage; the response never carries it.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid input")
		return
	}

	var input services.UpdateProfileInput

	if username, ok := rawReq["username"]; ok {
		usernameStr, ok := username.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.Username = &usernameStr
	}
	if email, ok := rawReq["email"]; ok {
		emailStr, ok := email.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.Email = &emailStr
	}
	if password, ok := rawReq["password"]; ok {
		passwordStr, ok := password.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.Password = &passwordStr
	}
	if fullName, ok := rawReq["fullName"]; ok {
		fullNameStr, ok := fullName.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid input")
			return
		}
		input.FullName = &fullNameStr
	}

	user, err := h.authService.UpdateProfile(c.Param("id"), input)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
