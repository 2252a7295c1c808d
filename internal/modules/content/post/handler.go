package post

import (
	"net/http"
	"strconv"

	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler serves the public blog pages and the admin post writes.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the reader-facing HTML pages.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.GET("/posts/:id/", h.detail)
	r.GET("/category/:slug/", h.category)
	r.GET("/location/:slug/", h.location)
}

// RegisterAdminRoutes mounts post writes onto an authenticated admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.POST("", h.create)
	posts.PUT("/:id", h.update)
	posts.DELETE("/:id", h.delete)
}

// index GET /
func (h *Handler) index(c *gin.Context) {
	posts, err := h.svc.HomeFeed(c.Request.Context())
	if err != nil {
		response.InternalErrorPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "blog/index.html", gin.H{"posts": posts})
}

// detail GET /posts/:id/
func (h *Handler) detail(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFoundPage(c)
		return
	}
	post, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		response.InternalErrorPage(c, err)
		return
	}
	if post == nil {
		response.NotFoundPage(c)
		return
	}
	c.HTML(http.StatusOK, "blog/detail.html", gin.H{"post": post})
}

// category GET /category/:slug/
func (h *Handler) category(c *gin.Context) {
	category, posts, err := h.svc.CategoryFeed(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalErrorPage(c, err)
		return
	}
	if category == nil {
		response.NotFoundPage(c)
		return
	}
	c.HTML(http.StatusOK, "blog/category.html", gin.H{
		"category":  category,
		"posts":     posts,
		"post_list": posts,
	})
}

// location GET /location/:slug/
func (h *Handler) location(c *gin.Context) {
	location, posts, err := h.svc.LocationFeed(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalErrorPage(c, err)
		return
	}
	if location == nil {
		response.NotFoundPage(c)
		return
	}
	c.HTML(http.StatusOK, "blog/location.html", gin.H{
		"location": location,
		"posts":    posts,
	})
}

// create POST /admin/api/posts
func (h *Handler) create(c *gin.Context) {
	var dto PostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// update PUT /admin/api/posts/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	var dto PostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Update(c.Request.Context(), id, &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, post)
}

// delete DELETE /admin/api/posts/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	found, err := h.svc.Delete(c.Request.Context(), id)
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

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
