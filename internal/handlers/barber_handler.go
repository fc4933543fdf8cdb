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

type BarberHandler struct {
	db    *gorm.DB
	cache *cache.Catalog
}

func NewBarberHandler(db *gorm.DB, cache *cache.Catalog) *BarberHandler {
	return &BarberHandler{db: db, cache: cache}
}

const barbersCacheKey = "catalog:barbers"

// List returns only barbers currently marked available.
func (h *BarberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var barbers []models.Barber
	if h.cache.Get(ctx, barbersCacheKey, &barbers) {
		httpresp.List(c, barbers)
		return
	}

	if err := h.db.WithContext(ctx).
		Where("available = ?", true).
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error consultando barberos.")
		return
	}

	h.cache.Set(ctx, barbersCacheKey, barbers)
	httpresp.List(c, barbers)
}

// Get returns a barber by id regardless of availability.
func (h *BarberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	httpresp.OK(c, barber)
}
