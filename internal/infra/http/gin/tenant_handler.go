package ginserver

import (
	"errors"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"stayview/internal/app/dto"
	"stayview/internal/domain/tenant"
)

type TenantHandler struct {
	Tenants tenant.Repository
}

func (h TenantHandler) Config(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant id must be an integer"})
		return
	}
	cfg, err := h.Tenants.Config(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MapTenantConfig(cfg))
}

var _ TenantHTTP = TenantHandler{}
