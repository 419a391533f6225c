package handler

import (
	"pix-notify/internal/adapter/http/dto"
	"pix-notify/internal/core/domain"
	"pix-notify/internal/core/ports"
	"pix-notify/pkg/apperror"
	"pix-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

// DeviceHandler handles device intake and status endpoints.
type DeviceHandler struct {
	registry ports.DeviceRegistry
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(registry ports.DeviceRegistry) *DeviceHandler {
	return &DeviceHandler{registry: registry}
}

// Heartbeat handles POST /devices/heartbeat.
func (h *DeviceHandler) Heartbeat(c *gin.Context) {
	var req dto.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingDeviceID())
		return
	}

	ip := req.IP
	if ip == "" {
		ip = c.ClientIP()
	}

	err := h.registry.RecordHeartbeat(c.Request.Context(), req.DeviceID, domain.Heartbeat{
		ReportedIP:     ip,
		SignalStrength: req.SignalStrength,
		UptimeMs:       req.UptimeMs,
		DebugEnabled:   req.Debug,
		LastPaymentID:  req.LastPaymentID,
	})
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"device_id": req.DeviceID})
}

// Event handles POST /devices/events.
func (h *DeviceHandler) Event(c *gin.Context) {
	var req dto.DeviceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.registry.RecordEvent(c.Request.Context(), req.DeviceID, domain.DeviceEvent{
		Type:      req.Type,
		PaymentID: req.PaymentID,
		Raw:       req.Raw,
	})
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"device_id": req.DeviceID, "type": req.Type})
}

// Log handles POST /devices/logs.
func (h *DeviceHandler) Log(c *gin.Context) {
	var req dto.DeviceLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.registry.RecordLog(c.Request.Context(), req.DeviceID, req.Line); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"device_id": req.DeviceID})
}

// List handles GET /devices.
func (h *DeviceHandler) List(c *gin.Context) {
	statuses, err := h.registry.ListStatuses(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, gin.H{"devices": statuses, "count": len(statuses)})
}

// Get handles GET /devices/:id.
func (h *DeviceHandler) Get(c *gin.Context) {
	st, err := h.registry.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if st == nil {
		response.Error(c, apperror.ErrDeviceNotFound())
		return
	}
	response.OK(c, st)
}
