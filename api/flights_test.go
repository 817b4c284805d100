package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := &MockFlightUseCase{}
	router := gin.New()
	NewFlightHandler(mockService).Register(router.Group("/flights"))

	mockService.On("List", mock.Anything).Return([]domain.Flight{
		{ID: 1, Number: "SU-101", AircraftModel: "A320"},
		{ID: 2, Number: "SU-202", AircraftModel: "B777-300"},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "SU-101", resp[0].Number)
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := &MockFlightUseCase{}
	router := gin.New()
	NewFlightHandler(mockService).Register(router.Group("/flights"))

	mockService.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
