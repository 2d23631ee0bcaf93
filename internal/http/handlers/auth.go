package handlers

import (
	"net/http"

	"navmind/internal/domain/models"
	"navmind/internal/http/middleware"
	"navmind/internal/services"

	"github.com/gin-gonic/gin"
)

// Accounts serves registration and login for API callers.
type Accounts struct {
	Users     services.UserStore
	JWTSecret []byte
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthUser is the user payload returned by the auth endpoints.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toAuthUser(u models.User) AuthUser {
	return AuthUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func (h Accounts) service(c *gin.Context) services.AccountService {
	return services.AccountService{
		Users:     h.Users,
		JWTSecret: h.JWTSecret,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/auth/register
func (h Accounts) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := h.service(c).Register(req.Name, req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": toAuthUser(u)})
}

// POST /api/auth/login
func (h Accounts) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, u, err := h.service(c).Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toAuthUser(u),
	})
}
