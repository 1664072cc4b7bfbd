package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/futbol-stats-service/internal/service"
	"github.com/maxviazov/futbol-stats-service/pkg/response"
)

type AuthHandler struct {
	svc service.TokenService
}

func NewAuthHandler(svc service.TokenService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(r *gin.Engine) {
	r.POST("/login", h.login)
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if req.Password == "" {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "password", Message: "is required"}}))
		return
	}
	token, err := h.svc.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"token": token})
}

const bearerPrefix = "Bearer "

// RequireAuth guards write endpoints: 401 when no bearer token is presented,
// 403 when the token fails verification (tampered or expired).
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorPayload{Error: "missing_token"})
			return
		}
		if err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix)); err != nil {
			response.WriteError(c, err)
			return
		}
		c.Next()
	}
}
