package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
	"github.com/SscSPs/bitcoin_price_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceHandler serves the raw and normalized Bitcoin price feeds.
type priceHandler struct {
	priceService portssvc.PriceFeedSvc
}

// RegisterPriceRoutes registers the price feed routes under rg.
func RegisterPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceFeedSvc) {
	h := &priceHandler{priceService: priceService}

	bitcoin := rg.Group("/bitcoin")
	{
		bitcoin.GET("/price", h.getTransformedPrice)
		bitcoin.GET("/price/original", h.getOriginalPrice)
	}
}

// getOriginalPrice godoc
// @Summary Raw Bitcoin price index
// @Description Returns the upstream price index, or a synthetic one when the upstream is unavailable
// @Tags bitcoin
// @Produce  json
// @Success 200 {object} domain.RawFeed
// @Router /bitcoin/price/original [get]
func (h *priceHandler) getOriginalPrice(c *gin.Context) {
	feed := h.priceService.OriginalFeed(c.Request.Context())
	c.JSON(http.StatusOK, feed)
}

// getTransformedPrice godoc
// @Summary Normalized Bitcoin price
// @Description Returns the formatted update time and every currency rate with its display name. Currencies missing upstream carry estimated rates.
// @Tags bitcoin
// @Produce  json
// @Success 200 {object} domain.TransformedFeed
// @Router /bitcoin/price [get]
func (h *priceHandler) getTransformedPrice(c *gin.Context) {
	feed := h.priceService.TransformedFeed(c.Request.Context())
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Transformed feed served",
		slog.String("update_time", feed.UpdateTime),
		slog.Int("currencies", len(feed.Currencies)),
	)
	c.JSON(http.StatusOK, feed)
}
