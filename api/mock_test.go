package api

import (
	"context"
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
	"github.com/Domenick1991/farecast/internal/service/pricing"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockPricingUseCase is a mock implementation of pricing.PricingUseCase
type MockPricingUseCase struct {
	mock.Mock
}

func (m *MockPricingUseCase) Quote(ctx context.Context, req domain.BookingRequest) (*domain.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockPricingUseCase) Ready() error {
	return m.Called().Error(0)
}

func (m *MockPricingUseCase) Today() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *MockPricingUseCase) ModelType() string {
	return m.Called().String(0)
}

var _ pricing.PricingUseCase = (*MockPricingUseCase)(nil)

var (
	testToday     = time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	artifactFiles = []string{"flight_price_model.json", "flight_price_columns.json"}
)

func newReadyService() *MockPricingUseCase {
	svc := &MockPricingUseCase{}
	svc.On("Ready").Return(nil).Maybe()
	svc.On("Today").Return(testToday).Maybe()
	svc.On("ModelType").Return("random_forest").Maybe()
	return svc
}

func newTestRouter(svc pricing.PricingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	LoadTemplates(router)
	router.Use(RequestLogger(zap.NewNop()))
	NewPageHandler(svc, artifactFiles, zap.NewNop()).Register(router)
	NewPredictionHandler(svc, zap.NewNop()).Register(router.Group("/api/v1"))
	NewHealthHandler(svc).Register(router)
	return router
}
