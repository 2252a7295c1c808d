package location

import (
	"strconv"

	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterAdminRoutes mounts location writes onto an authenticated admin group.
// Listing and bulk actions come from the admin site.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	locs := rg.Group("/locations")
	locs.POST("", h.create)
	locs.PUT("/:id", h.update)
	locs.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto LocationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	loc, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, loc)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		response.NotFound(c)
		return
	}
	var dto LocationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	loc, err := h.svc.Update(c.Request.Context(), uint(id), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if loc == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, loc)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		response.NotFound(c)
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
