package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/notifications/internal/ports"
	"github.com/Gunvolt24/notifications/internal/usecase"
	"github.com/Gunvolt24/notifications/pkg/ctxmeta"
	"github.com/Gunvolt24/notifications/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const emailSummaryPath = "/notifications/api/v1/orders/:id/notifications/email"

type Handler struct {
	service    ports.SummaryService
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 отключает ограничение времени обработки.
func NewHandler(service ports.SummaryService, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

// NewRouter — gin с recovery, request id, логированием запросов и,
// если задано имя сервиса, otelgin-трассировкой.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET(emailSummaryPath, h.getEmailSummary)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	return r
}

// getEmailSummary — сводка по письмам заказа отправителя из X-Creator.
func (h *Handler) getEmailSummary(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	creator, ok := httpx.Creator(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + httpx.HeaderCreator + " header"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()
	ctx = ctxmeta.WithOrderID(ctx, id.String())

	summary, err := h.service.GetEmailSummary(ctx, id, creator)
	switch {
	case errors.Is(err, usecase.ErrSummaryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case err != nil:
		h.log.Errorf(ctx, "GetEmailSummary failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.JSON(http.StatusOK, summary)
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.reqTimeout)
	}
	return context.WithCancel(c.Request.Context())
}
