package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
	"github.com/SscSPs/bitcoin_price_app/internal/dto"
	"github.com/SscSPs/bitcoin_price_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers the Reference Store CRUD routes under rg.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.GET("/:id", h.getCurrencyByID)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
		currencies.GET("/code/:code", h.getCurrencyByCode)
	}
}

// parseID reads the numeric :id path parameter, writing a 400 when invalid.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Currency not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate currency code", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Currency code already exists"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every reference currency ordered by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByID godoc
// @Summary Get a currency by id
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("currency_id", id))

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/code/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", code))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a currency to the reference store
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create currency", slog.String("currency_code", req.Code))

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create currency")
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", strings.TrimSuffix(c.FullPath(), "/"), created.ID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// updateCurrency godoc
// @Summary Update a currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("currency_id", id))

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Tags currencies
// @Param   id path int true "Currency ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("currency_id", id))

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), id); err != nil {
		respondServiceError(c, logger, err, "Failed to delete currency")
		return
	}
	c.Status(http.StatusNoContent)
}
