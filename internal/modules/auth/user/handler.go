package user

import (
	"errors"
	"strconv"
	"time"

	"github.com/blogicum/blogicum/internal/middleware"
	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterLoginRoute mounts the unauthenticated login endpoint.
func (h *Handler) RegisterLoginRoute(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}

// RegisterAdminRoutes mounts user writes onto an authenticated admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("", h.create)
	users.PUT("/:id", h.update)
	users.DELETE("/:id", h.delete)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.Login(c.Request.Context(), dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.log.Warn("admin login failed", zap.String("username", dto.Username), zap.String("ip", c.ClientIP()))
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	h.log.Info("admin login", zap.Uint("user_id", u.ID), zap.String("ip", c.ClientIP()))
	response.OK(c, loginResponse{Token: token, ExpiresAt: time.Now().Add(h.svc.tokenTTL), User: u})
}

func (h *Handler) create(c *gin.Context) {
	var dto UserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, u)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		response.NotFound(c)
		return
	}
	var dto UserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Update(c.Request.Context(), uint(id), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		response.NotFound(c)
		return
	}
	if uint(id) == middleware.CurrentUserID(c) {
		response.BadRequest(c, "you cannot delete your own account")
		return
	}
	found, err := h.svc.Delete(c.Request.Context(), uint(id))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
