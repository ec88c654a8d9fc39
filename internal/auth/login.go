package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manthan270/hirelite/internal/model"
	"github.com/manthan270/hirelite/internal/store"
	"github.com/manthan270/hirelite/internal/utilities"
)

// AuthController handles login, logout and session introspection.
type AuthController struct {
	Identity IdentityProvider
	Sessions *store.SessionStore
}

// NewAuthController creates a new instance of AuthController with the
// provided identity provider and session store.
func NewAuthController(identity IdentityProvider, sessions *store.SessionStore) *AuthController {
	return &AuthController{
		Identity: identity,
		Sessions: sessions,
	}
}

type loginInfo struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=candidate employer"`
}

type sessionResponse struct {
	User        model.Session `json:"user"`
	AccessToken string        `json:"access_token"`
}

// LoginHandler function handles login by receiving an email and role
// @Summary Create a session for any email and role pair
// @Description No credential validation happens here, the identity provider is a demo mock
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "role can be only 'candidate' or 'employer'"
// @Success 201 {object} sessionResponse "Session created"
// @Failure 400 {object} utilities.ErrorResponse "Email or role missing or malformed"
// @Failure 500 {object} utilities.ErrorResponse "Token signing error"
// @Router /auth/login [post]
func (ac *AuthController) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email and role (only 'candidate' or 'employer') must be provided",
		})
		return
	}

	session, err := ac.Identity.Authenticate(info.Email, info.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ac.Sessions.Put(session)

	accessToken, err := GenerateToken(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{
		User:        session,
		AccessToken: accessToken,
	})
}

// LogoutHandler ends the active session, invalidating its access token
// @Summary Log out the current session
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} utilities.MessageResponse "Successfully logged out"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token or no session"
// @Router /auth/logout [post]
func (ac *AuthController) LogoutHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	ac.Sessions.Delete(user.ID)

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully logged out"})
}

// MeHandler returns the current session identity
// @Summary Get the signed-in identity
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.Session "The active session"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token or no session"
// @Router /auth/me [get]
func (ac *AuthController) MeHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
