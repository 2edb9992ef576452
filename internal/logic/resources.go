package logic

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sobriety-backend/internal/db"
)

// GetResourcesHandler lists support resources, crisis lines first.
func (h *Handler) GetResourcesHandler(c *gin.Context) {
	resources, err := h.store.ListResources(c.Request.Context())
	if err != nil {
		h.logger(c).Error("list resources failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"resources": resources})
}

func (h *Handler) CreateResourceHandler(c *gin.Context) {
	var req struct {
		Title  string `json:"title"`
		Desc   string `json:"desc"`
		Phone  string `json:"phone"`
		URL    string `json:"url"`
		Crisis bool   `json:"crisis"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(400, gin.H{"error": "title required"})
		return
	}
	if req.Phone == "" && req.URL == "" {
		c.JSON(400, gin.H{"error": "phone or url required"})
		return
	}
	resource := db.Resource{
		Title:     strings.TrimSpace(req.Title),
		Desc:      req.Desc,
		Phone:     req.Phone,
		URL:       req.URL,
		Crisis:    req.Crisis,
		CreatedAt: h.now(),
	}
	if err := h.store.CreateResource(c.Request.Context(), &resource); err != nil {
		h.logger(c).Error("create resource failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"id": resource.ID})
}
