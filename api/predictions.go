package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/farecast/internal/currency"
	"github.com/Domenick1991/farecast/internal/domain"
	"github.com/Domenick1991/farecast/internal/model"
	"github.com/Domenick1991/farecast/internal/service/pricing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PredictionHandler struct {
	service pricing.PricingUseCase
	log     *zap.Logger
}

type predictionRequest struct {
	Airline       string `json:"airline" binding:"required"`
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	Class         string `json:"class" binding:"required"`
	Stops         int    `json:"stops" binding:"min=0,max=2"`
	DepartureDate string `json:"departure_date" binding:"required"`
}

type predictionResponse struct {
	ID               string  `json:"id"`
	PriceINR         float64 `json:"price_inr"`
	PriceIDR         float64 `json:"price_idr"`
	DisplayINR       string  `json:"display_inr"`
	DisplayIDR       string  `json:"display_idr"`
	DaysLeft         int     `json:"days_left"`
	SeasonalityScore int     `json:"seasonality_score"`
	BookingWindow    string  `json:"booking_window"`
	Route            string  `json:"route"`
	ModelType        string  `json:"model_type"`
	QuotedOn         string  `json:"quoted_on"`
}

type optionsResponse struct {
	Airlines     []domain.Airline    `json:"airlines"`
	Cities       []domain.City       `json:"cities"`
	CabinClasses []domain.CabinClass `json:"cabin_classes"`
	Stops        []int               `json:"stops"`
	MinDate      string              `json:"min_date"`
	INRToIDR     int                 `json:"inr_to_idr"`
}

func NewPredictionHandler(service pricing.PricingUseCase, log *zap.Logger) *PredictionHandler {
	return &PredictionHandler{service: service, log: log}
}

func (h *PredictionHandler) Register(router *gin.RouterGroup) {
	router.POST("/predictions", h.create)
	router.GET("/options", h.options)
}

func (h *PredictionHandler) create(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	departure, err := time.Parse(time.DateOnly, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure_date must be YYYY-MM-DD"})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), domain.BookingRequest{
		Airline:       domain.Airline(req.Airline),
		Origin:        domain.City(req.Origin),
		Destination:   domain.City(req.Destination),
		Class:         domain.CabinClass(req.Class),
		Stops:         req.Stops,
		DepartureDate: departure,
	})
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, model.ErrMissingArtifact):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			h.log.Error("prediction failed", zap.String("request_id", RequestID(c)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		}
		return
	}

	c.JSON(http.StatusOK, predictionResponse{
		ID:               quote.ID,
		PriceINR:         quote.PriceINR,
		PriceIDR:         quote.PriceIDR,
		DisplayINR:       currency.FormatINR(quote.PriceINR),
		DisplayIDR:       currency.FormatIDR(quote.PriceIDR),
		DaysLeft:         quote.DaysLeft,
		SeasonalityScore: quote.Seasonality,
		BookingWindow:    quote.BookingWindow,
		Route:            quote.Route,
		ModelType:        quote.ModelType,
		QuotedOn:         quote.QuotedOn.Format(time.DateOnly),
	})
}

func (h *PredictionHandler) options(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{
		Airlines:     domain.Airlines,
		Cities:       domain.Cities,
		CabinClasses: domain.CabinClasses,
		Stops:        domain.StopCounts,
		MinDate:      h.service.Today().Format(time.DateOnly),
		INRToIDR:     currency.INRToIDR,
	})
}
