package handler

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"tree-explorer-api/internal/models"
	"tree-explorer-api/internal/observability"
	"tree-explorer-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDiameterService is a mock implementation of the DiameterService interface
type MockDiameterService struct {
	mock.Mock
}

func (m *MockDiameterService) Distribution(ctx context.Context, min, max float64) (*models.DiameterDistribution, error) {
	args := m.Called(ctx, min, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiameterDistribution), args.Error(1)
}

// matchNaN matches a float argument that is NaN (NaN != NaN, so mock.Anything
// with equality would never match it in expectations).
var matchNaN = mock.MatchedBy(func(v float64) bool { return math.IsNaN(v) })

func TestDiameterHandler_Distribution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	distribution := &models.DiameterDistribution{
		MinDBH: 10,
		MaxDBH: 20,
		Total:  4,
		Counts: []models.SpeciesCount{{Species: "Red Maple", Count: 4}},
	}

	t.Run("successful distribution", func(t *testing.T) {
		mockSvc := new(MockDiameterService)
		mockSvc.On("Distribution", mock.Anything, 10.0, 20.0).Return(distribution, nil)
		handler := NewDiameterHandler(mockSvc, observability.NewMetricsForTesting())

		w := performDiameterRequest(handler, "min=10&max=20")

		assert.Equal(t, http.StatusOK, w.Code)
		var body models.DiameterDistribution
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, *distribution, body)
		mockSvc.AssertExpectations(t)
	})

	t.Run("omitted bounds pass through as NaN", func(t *testing.T) {
		mockSvc := new(MockDiameterService)
		mockSvc.On("Distribution", mock.Anything, matchNaN, matchNaN).Return(distribution, nil)
		handler := NewDiameterHandler(mockSvc, observability.NewMetricsForTesting())

		w := performDiameterRequest(handler, "")

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid min format", func(t *testing.T) {
		mockSvc := new(MockDiameterService)
		handler := NewDiameterHandler(mockSvc, observability.NewMetricsForTesting())

		w := performDiameterRequest(handler, "min=abc&max=20")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assertErrorBody(t, w, "invalid 'min' format")
	})

	t.Run("invalid max format", func(t *testing.T) {
		mockSvc := new(MockDiameterService)
		handler := NewDiameterHandler(mockSvc, observability.NewMetricsForTesting())

		w := performDiameterRequest(handler, "min=10&max=abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assertErrorBody(t, w, "invalid 'max' format")
	})

	t.Run("inverted range", func(t *testing.T) {
		mockSvc := new(MockDiameterService)
		mockSvc.On("Distribution", mock.Anything, 30.0, 10.0).Return(nil, service.ErrInvalidRange)
		handler := NewDiameterHandler(mockSvc, observability.NewMetricsForTesting())

		w := performDiameterRequest(handler, "min=30&max=10")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assertErrorBody(t, w, "'min' must not exceed 'max'")
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockDiameterService)
		mockSvc.On("Distribution", mock.Anything, 10.0, 20.0).Return(nil, assert.AnError)
		handler := NewDiameterHandler(mockSvc, observability.NewMetricsForTesting())

		w := performDiameterRequest(handler, "min=10&max=20")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assertErrorBody(t, w, "internal server error")
		mockSvc.AssertExpectations(t)
	})
}

func performDiameterRequest(handler *DiameterHandler, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/trees/diameter", nil)
	req.URL.RawQuery = rawQuery
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Distribution(c)
	return w
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, expected, body["error"])
}
