// Package ledgerstub serves the ledger REST API from an in-memory store. It
// stands in for the real ledger during local development and end-to-end tests.
package ledgerstub

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okian/fabcar-web/internal/adapters/repository"
	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/pkg/logger"
)

// Handler exposes the four ledger endpoints over a repository.Store.
type Handler struct {
	store  repository.Store
	logger logger.Logger
}

// NewRouter builds a gin engine serving the ledger API from store.
func NewRouter(store repository.Store, log logger.Logger) *gin.Engine {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{store: store, logger: log}

	router := gin.New()
	router.Use(requestLogger(log))
	router.Use(gin.Recovery())

	router.GET("/queryallcars", h.QueryAllCars)
	router.GET("/querycar", h.QueryCar)
	router.POST("/createcar", h.CreateCar)
	router.POST("/changecarowner", h.ChangeCarOwner)
	return router
}

// QueryAllCars handles GET /queryallcars.
func (h *Handler) QueryAllCars(c *gin.Context) {
	all, err := h.store.Range(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// QueryCar handles GET /querycar?car=<carnumber>.
func (h *Handler) QueryCar(c *gin.Context) {
	key := c.Query("car")
	rec, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		h.fail(c, statusFor(err), fmt.Errorf("%s does not exist: %w", key, err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateCar handles POST /createcar.
func (h *Handler) CreateCar(c *gin.Context) {
	var car model.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	if err := h.store.Create(c.Request.Context(), car.CarNumber, car.Record()); err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	c.String(http.StatusOK, "")
}

// ChangeCarOwner handles POST /changecarowner. It answers with the record as
// read back after the write.
func (h *Handler) ChangeCarOwner(c *gin.Context) {
	var req model.ChangeOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	ctx := c.Request.Context()
	rec, err := h.store.Get(ctx, req.CarNumber)
	if err != nil {
		h.fail(c, statusFor(err), fmt.Errorf("%s does not exist: %w", req.CarNumber, err))
		return
	}
	rec.Owner = req.NewOwner
	if err := h.store.Put(ctx, req.CarNumber, rec); err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	updated, err := h.store.Get(ctx, req.CarNumber)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "ledger request failed", logger.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrExists):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalidKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info(c.Request.Context(), "ledger request",
			logger.Int("status", c.Writer.Status()),
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.String("query", query),
			logger.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
		)
	}
}
