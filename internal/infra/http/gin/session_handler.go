package ginserver

import (
	"errors"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"stayview/internal/app/dto"
	"stayview/internal/app/sessions"
	"stayview/internal/domain/stay"
	"stayview/internal/domain/tenant"
	"stayview/internal/infra/storage/memory"
)

type SessionHandler struct {
	Sessions *sessions.Service
}

type createSessionRequest struct {
	TenantID int64 `json:"tenant_id" binding:"required"`
}

func (h SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Sessions.Create(c.Request.Context(), req.TenantID, c.GetHeader("Accept-Language"))
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session": dto.MapSessionState(session, session.Calendar.Snapshot()),
		"config":  dto.MapTenantConfig(session.Tenant),
	})
}

func (h SessionHandler) State(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MapSessionState(session, session.Calendar.Snapshot()))
}

type setPropertyRequest struct {
	PropertyID int64 `json:"property_id" binding:"required"`
}

func (h SessionHandler) SetProperty(c *gin.Context) {
	var req setPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Sessions.SetProperty(c.Request.Context(), c.Param("id"), req.PropertyID); err != nil {
		h.fail(c, err)
		return
	}
	h.respondState(c)
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h SessionHandler) SelectDate(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Sessions.SelectDate(c.Request.Context(), c.Param("id"), req.Date); err != nil {
		h.fail(c, err)
		return
	}
	h.respondState(c)
}

// Delta is deliberately unconstrained: zero is a valid no-op.
type changeMonthRequest struct {
	Delta int `json:"delta"`
}

func (h SessionHandler) ChangeMonth(c *gin.Context) {
	var req changeMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Sessions.ChangeMonth(c.Param("id"), req.Delta); err != nil {
		h.fail(c, err)
		return
	}
	h.respondState(c)
}

type switchCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h SessionHandler) SwitchCurrency(c *gin.Context) {
	var req switchCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Sessions.SwitchCurrency(c.Request.Context(), c.Param("id"), req.Code); err != nil {
		h.fail(c, err)
		return
	}
	h.respondState(c)
}

func (h SessionHandler) Calendar(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	month := session.Calendar.Snapshot().DisplayedMonth
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		month = parsed
	}
	cells := session.Calendar.MonthView(month)
	c.JSON(http.StatusOK, dto.MapCalendarMonth(stay.MonthStart(month).Format("2006-01"), cells))
}

func (h SessionHandler) lookup(c *gin.Context) (*sessions.Session, bool) {
	session, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return session, true
}

func (h SessionHandler) respondState(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MapSessionState(session, session.Calendar.Snapshot()))
}

func (h SessionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, memory.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, sessions.ErrCurrencyNotOffered):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

var _ SessionHTTP = SessionHandler{}
