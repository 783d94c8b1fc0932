package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/middleware"
	"hotel-management/session"
	"hotel-management/utils"
	"hotel-management/validation"
)

type AuthController struct {
	users    UserStore
	sessions *session.Manager
}

func NewAuthController(users UserStore, sessions *session.Manager) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)
}

// Register creates the account and logs the new user straight in.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, password, apiErr := validation.Register(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	existing, err := ac.users.GetUserByEmail(user.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.FailInternal(c, "check email", err)
		return
	}
	if existing != nil {
		utils.Fail(c, apperrors.BadRequest("EMAIL_ALREADY_EXISTS", "Email already registered"))
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.FailInternal(c, "hash password", err)
		return
	}
	user.Password = hash

	if err := ac.users.CreateUser(user); err != nil {
		utils.FailInternal(c, "create user", err)
		return
	}

	token, err := ac.sessions.Create(c.Request.Context(), session.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		utils.FailInternal(c, "create session", err)
		return
	}
	ac.setSessionCookie(c, token, int(session.TTL.Seconds()))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    dto.SessionUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" ||
		req.Password == nil || *req.Password == "" {
		utils.Fail(c, apperrors.BadRequest("MISSING_CREDENTIALS", "Email and password are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(*req.Email))
	user, err := ac.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, &apperrors.APIError{
				Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password",
			})
			return
		}
		utils.FailInternal(c, "fetch user", err)
		return
	}
	if !utils.CheckPassword(user.Password, *req.Password) {
		utils.Fail(c, &apperrors.APIError{
			Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password",
		})
		return
	}

	token, err := ac.sessions.Create(c.Request.Context(), session.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		utils.FailInternal(c, "create session", err)
		return
	}
	ac.setSessionCookie(c, token, int(session.TTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.SessionUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

// Session reports the current identity; an anonymous request gets user: null
// rather than an error.
func (ac *AuthController) Session(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": dto.SessionUser{ID: ident.UserID, Name: ident.Name, Email: ident.Email, Role: ident.Role},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := ac.sessions.Destroy(c.Request.Context(), token); err != nil && !errors.Is(err, session.ErrNotFound) {
			utils.FailInternal(c, "destroy session", err)
			return
		}
	}
	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
