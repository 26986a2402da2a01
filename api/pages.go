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

// PageHandler serves the single prediction page.
type PageHandler struct {
	service       pricing.PricingUseCase
	artifactFiles []string
	log           *zap.Logger
}

type formValues struct {
	Airline       string `form:"airline" binding:"required"`
	Origin        string `form:"origin" binding:"required"`
	Destination   string `form:"destination" binding:"required"`
	Class         string `form:"class" binding:"required"`
	Stops         int    `form:"stops" binding:"min=0,max=2"`
	DepartureDate string `form:"departure_date" binding:"required"`
}

type pageData struct {
	Airlines  []domain.Airline
	Cities    []domain.City
	Classes   []domain.CabinClass
	Stops     []int
	Form      formValues
	MinDate   string
	Error     string
	Quote     *domain.Quote
	ModelType string
	Rate      int
}

func NewPageHandler(service pricing.PricingUseCase, artifactFiles []string, log *zap.Logger) *PageHandler {
	return &PageHandler{service: service, artifactFiles: artifactFiles, log: log}
}

func (h *PageHandler) Register(router gin.IRoutes) {
	router.GET("/", h.form)
	router.POST("/", h.predict)
}

func (h *PageHandler) form(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	today := h.service.Today()
	c.HTML(http.StatusOK, "index.html", h.page(today, defaultForm(today)))
}

func (h *PageHandler) predict(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	today := h.service.Today()

	var form formValues
	if err := c.ShouldBind(&form); err != nil {
		data := h.page(today, form)
		data.Error = "Please fill in every field."
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	data := h.page(today, form)
	departure, err := time.Parse(time.DateOnly, form.DepartureDate)
	if err != nil {
		data.Error = "Departure date must look like YYYY-MM-DD."
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), domain.BookingRequest{
		Airline:       domain.Airline(form.Airline),
		Origin:        domain.City(form.Origin),
		Destination:   domain.City(form.Destination),
		Class:         domain.CabinClass(form.Class),
		Stops:         form.Stops,
		DepartureDate: departure,
	})
	switch {
	case err == nil:
		data.Quote = quote
		c.HTML(http.StatusOK, "index.html", data)
	case domain.IsValidationError(err):
		data.Error = validationMessage(err)
		c.HTML(http.StatusUnprocessableEntity, "index.html", data)
	case errors.Is(err, model.ErrMissingArtifact):
		h.unavailable(c, err)
	default:
		h.log.Error("prediction failed", zap.String("request_id", RequestID(c)), zap.Error(err))
		data.Error = "The price could not be predicted. Please try again later."
		c.HTML(http.StatusInternalServerError, "index.html", data)
	}
}

// ready renders the blocking page when the model artifacts cannot be loaded.
func (h *PageHandler) ready(c *gin.Context) bool {
	err := h.service.Ready()
	if err == nil {
		return true
	}
	h.unavailable(c, err)
	return false
}

func (h *PageHandler) unavailable(c *gin.Context, err error) {
	missing := errors.Is(err, model.ErrMissingArtifact)
	if !missing {
		h.log.Error("model artifacts unusable", zap.Error(err))
	}
	c.HTML(http.StatusServiceUnavailable, "unavailable.html", gin.H{
		"Missing": missing,
		"Files":   h.artifactFiles,
	})
}

func (h *PageHandler) page(today time.Time, form formValues) pageData {
	return pageData{
		Airlines:  domain.Airlines,
		Cities:    domain.Cities,
		Classes:   domain.CabinClasses,
		Stops:     domain.StopCounts,
		Form:      form,
		MinDate:   today.Format(time.DateOnly),
		ModelType: h.service.ModelType(),
		Rate:      currency.INRToIDR,
	}
}

func defaultForm(today time.Time) formValues {
	return formValues{
		Airline:       string(domain.AirlineVistara),
		Origin:        string(domain.CityDelhi),
		Destination:   string(domain.CityMumbai),
		Class:         string(domain.CabinEconomy),
		Stops:         0,
		DepartureDate: today.Format(time.DateOnly),
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSameCity):
		return "Origin and destination cities must differ."
	case errors.Is(err, domain.ErrDepartureInPast):
		return "Departure date cannot be in the past."
	case errors.Is(err, domain.ErrUnknownAirline):
		return "Please choose one of the listed airlines."
	case errors.Is(err, domain.ErrUnknownCity):
		return "Please choose one of the listed cities."
	case errors.Is(err, domain.ErrUnknownCabinClass):
		return "Cabin class must be Economy or Business."
	case errors.Is(err, domain.ErrInvalidStops):
		return "Stops must be 0, 1 or 2."
	default:
		return err.Error()
	}
}
