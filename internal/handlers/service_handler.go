package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/urbanbarber/api/internal/cache"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/httpresp"
	"github.com/urbanbarber/api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Catalog
}

func NewServiceHandler(db *gorm.DB, cache *cache.Catalog) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cache}
}

const servicesCacheKey = "catalog:services"

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if h.cache.Get(ctx, servicesCacheKey, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.WithContext(ctx).
		Where("available = ?", true).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error consultando servicios.")
		return
	}

	h.cache.Set(ctx, servicesCacheKey, services)
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).
		First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	httpresp.OK(c, service)
}
