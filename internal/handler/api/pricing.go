package api

import (
	"errors"
	"net/http"
	"time"

	"tripnest-api/internal/domain/pricing"
	reqdto "tripnest-api/internal/handler/dto/request"
	resdto "tripnest-api/internal/handler/dto/response"
	"tripnest-api/internal/infra"
	"tripnest-api/internal/pkg/errs"
	"tripnest-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Quote a stay
// @Description Resolve availability and an itemized price breakdown for a date range
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *PricingHandler) CreateQuote(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	query, err := req.ToQuery()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must use the YYYY-MM-DD format",
		})
		return
	}

	quoteRM, err := h.pricingQueries.Quote(c.Request.Context(), query)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errors.Is(err, errs.ErrDatesUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "One or more dates in the range are unavailable",
			})
		case errors.Is(err, errs.ErrStayBoundsViolated):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Stay length is outside the allowed bounds for these dates",
			})
		case errors.Is(err, errs.ErrNegativeBasePrice):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Listing has an invalid price",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quoteRM))
}

// @Summary Listing calendar strip
// @Description Per-date availability and price for the date picker
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end, exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/calendar [get]
func (h *PricingHandler) GetCalendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	from, err := time.Parse(pricing.DateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date",
		})
		return
	}
	to, err := time.Parse(pricing.DateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date",
		})
		return
	}

	days, err := h.pricingQueries.Calendar(c.Request.Context(), id, from, to)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Range end must be after range start",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarDayViews(days))
}

// @Summary Browse-time display price
// @Description Indicative nightly price and discount badge for list cards, no dates required
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.DisplayPriceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/display-price [get]
func (h *PricingHandler) GetDisplayPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	view, err := h.pricingQueries.DisplayPrice(c.Request.Context(), id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDisplayPriceView(view))
}
