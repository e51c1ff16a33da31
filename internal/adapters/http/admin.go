// Package http sirve la API de administración: estado, versión y el diario
// de llamadas.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/adapters/store"
	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
	"dev.rubentxu.step7-service/internal/version"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// CallReader es la parte de lectura del diario que usa la API.
type CallReader interface {
	Get(id string) (domain.CallRecord, error)
	Recent(limit int) ([]domain.CallRecord, error)
}

// AdminHandler atiende los endpoints de administración.
type AdminHandler struct {
	calls  CallReader
	logger ports.Logger
}

func NewAdminHandler(calls CallReader, logger ports.Logger) *AdminHandler {
	return &AdminHandler{calls: calls, logger: logger}
}

// NewRouter construye el router gin con todas las rutas registradas.
func NewRouter(calls CallReader, logger ports.Logger) *gin.Engine {
	logger = logger.With("component", "admin_http")
	h := NewAdminHandler(calls, logger)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.GET("/healthz", h.Health)
	r.GET("/version", h.Version)
	r.GET("/calls", h.ListCalls)
	r.GET("/calls/:id", h.GetCall)
	return r
}

// Health responde siempre 200 mientras el proceso está vivo.
// GET /healthz
func (h *AdminHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /version
func (h *AdminHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Info())
}

// ListCalls devuelve los registros más recientes.
// GET /calls?limit=N
func (h *AdminHandler) ListCalls(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	records, err := h.calls.Recent(limit)
	if err != nil {
		h.logger.Error("failed to read journal", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read journal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calls": records, "count": len(records)})
}

// GET /calls/:id
func (h *AdminHandler) GetCall(c *gin.Context) {
	rec, err := h.calls.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "call not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to read journal", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read journal"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Debug("http request",
			"method", c.Request.Method,
			"path", path,
			"client_ip", c.ClientIP(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
