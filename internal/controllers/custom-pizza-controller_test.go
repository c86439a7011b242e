package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/franciscosanchezn/custom-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPizzaService struct {
	mock.Mock
}

func (m *mockPizzaService) CreatePizza(ctx context.Context, name string, ingredientNames []string) (models.CustomPizza, error) {
	args := m.Called(ctx, name, ingredientNames)
	return args.Get(0).(models.CustomPizza), args.Error(1)
}

func (m *mockPizzaService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	ingredients, _ := args.Get(0).([]models.Ingredient)
	return ingredients, args.Error(1)
}

func (m *mockPizzaService) ListPizzas(ctx context.Context) ([]models.CustomPizza, error) {
	args := m.Called(ctx)
	pizzas, _ := args.Get(0).([]models.CustomPizza)
	return pizzas, args.Error(1)
}

func (m *mockPizzaService) GetPizza(ctx context.Context, id uint) (models.CustomPizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CustomPizza), args.Error(1)
}

func (m *mockPizzaService) UpdatePizza(ctx context.Context, id uint, name string, ingredientNames []string) (models.CustomPizza, error) {
	args := m.Called(ctx, id, name, ingredientNames)
	return args.Get(0).(models.CustomPizza), args.Error(1)
}

func (m *mockPizzaService) DeletePizza(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupControllerRouter(service services.CustomPizzaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCustomPizzaController(service)
	router.POST("/custom-pizza", controller.CreateCustomPizza)
	router.GET("/ingredients", controller.GetIngredients)
	router.GET("/custom-pizzas", controller.GetCustomPizzas)
	router.GET("/custom-pizza/:id", controller.GetCustomPizzaByID)
	router.PUT("/custom-pizza/:id", controller.UpdateCustomPizza)
	router.DELETE("/custom-pizza/:id", controller.DeleteCustomPizza)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Error
}

func samplePizza() models.CustomPizza {
	return models.CustomPizza{
		ID:              3,
		Name:            "Olive Lover",
		IngredientNames: []string{"cheese", "olives"},
		FinalPrice:      decimal.RequireFromString("7.25"),
	}
}

func TestCreateCustomPizza(t *testing.T) {
	service := new(mockPizzaService)
	service.On("CreatePizza", mock.Anything, "Olive Lover", []string{"cheese", "olives"}).Return(samplePizza(), nil)
	router := setupControllerRouter(service)

	w := perform(router, http.MethodPost, "/custom-pizza",
		`{"name":"Olive Lover","ingredient_names":["cheese","olives"],"final_price":999}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.MsgPizzaCreated, response["message"])
	customPizza := response["customPizza"].(map[string]interface{})
	assert.Equal(t, "7.25", customPizza["final_price"])
	assert.Equal(t, float64(3), customPizza["id"])
	service.AssertExpectations(t)
}

func TestCreateCustomPizzaRejectsBadBodies(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "missing name", body: `{"ingredient_names":["cheese"]}`, expected: models.ErrMsgInvalidPizzaName},
		{name: "empty name", body: `{"name":"","ingredient_names":[]}`, expected: models.ErrMsgInvalidPizzaName},
		{name: "malformed json", body: `{"name":`, expected: models.ErrMsgInvalidRequestBody},
		{name: "ingredient names not strings", body: `{"name":"x","ingredient_names":[1,2]}`, expected: models.ErrMsgInvalidRequestBody},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockPizzaService)
			router := setupControllerRouter(service)

			w := perform(router, http.MethodPost, "/custom-pizza", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.expected, decodeError(t, w))
			service.AssertNotCalled(t, "CreatePizza", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCustomPizzaAcceptsAnyIngredientName(t *testing.T) {
	longName := strings.Repeat("z", 300)
	service := new(mockPizzaService)
	service.On("CreatePizza", mock.Anything, "x", []string{"", longName}).Return(models.CustomPizza{
		ID:              4,
		Name:            "x",
		IngredientNames: []string{"", longName},
		FinalPrice:      decimal.RequireFromString("5"),
	}, nil)
	router := setupControllerRouter(service)

	w := perform(router, http.MethodPost, "/custom-pizza", `{"name":"x","ingredient_names":["","`+longName+`"]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"final_price":"5.00"`)
	service.AssertExpectations(t)
}

func TestCreateCustomPizzaBlankNameFromService(t *testing.T) {
	service := new(mockPizzaService)
	service.On("CreatePizza", mock.Anything, "   ", []string(nil)).Return(models.CustomPizza{}, services.ErrInvalidPizzaName)
	router := setupControllerRouter(service)

	w := perform(router, http.MethodPost, "/custom-pizza", `{"name":"   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrMsgInvalidPizzaName, decodeError(t, w))
}

func TestStoreFailuresReturnInternalServerError(t *testing.T) {
	storeErr := errors.New("pq: connection refused")

	testCases := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(service *mockPizzaService)
	}{
		{
			name: "create", method: http.MethodPost, path: "/custom-pizza", body: `{"name":"x"}`,
			setup: func(s *mockPizzaService) {
				s.On("CreatePizza", mock.Anything, "x", mock.Anything).Return(models.CustomPizza{}, storeErr)
			},
		},
		{
			name: "list ingredients", method: http.MethodGet, path: "/ingredients",
			setup: func(s *mockPizzaService) { s.On("ListIngredients", mock.Anything).Return(nil, storeErr) },
		},
		{
			name: "list pizzas", method: http.MethodGet, path: "/custom-pizzas",
			setup: func(s *mockPizzaService) { s.On("ListPizzas", mock.Anything).Return(nil, storeErr) },
		},
		{
			name: "get", method: http.MethodGet, path: "/custom-pizza/1",
			setup: func(s *mockPizzaService) {
				s.On("GetPizza", mock.Anything, uint(1)).Return(models.CustomPizza{}, storeErr)
			},
		},
		{
			name: "update", method: http.MethodPut, path: "/custom-pizza/1", body: `{"name":"x"}`,
			setup: func(s *mockPizzaService) {
				s.On("UpdatePizza", mock.Anything, uint(1), "x", mock.Anything).Return(models.CustomPizza{}, storeErr)
			},
		},
		{
			name: "delete", method: http.MethodDelete, path: "/custom-pizza/1",
			setup: func(s *mockPizzaService) { s.On("DeletePizza", mock.Anything, uint(1)).Return(storeErr) },
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockPizzaService)
			tt.setup(service)
			router := setupControllerRouter(service)

			w := perform(router, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, models.ErrMsgInternalServer, decodeError(t, w))
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestNotFoundResponses(t *testing.T) {
	service := new(mockPizzaService)
	service.On("GetPizza", mock.Anything, uint(9)).Return(models.CustomPizza{}, services.ErrPizzaNotFound)
	service.On("UpdatePizza", mock.Anything, uint(9), "x", mock.Anything).Return(models.CustomPizza{}, services.ErrPizzaNotFound)
	service.On("DeletePizza", mock.Anything, uint(9)).Return(services.ErrPizzaNotFound)
	router := setupControllerRouter(service)

	for _, w := range []*httptest.ResponseRecorder{
		perform(router, http.MethodGet, "/custom-pizza/9", ""),
		perform(router, http.MethodPut, "/custom-pizza/9", `{"name":"x"}`),
		perform(router, http.MethodDelete, "/custom-pizza/9", ""),
	} {
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, models.ErrMsgPizzaNotFound, decodeError(t, w))
	}
}

func TestInvalidPizzaID(t *testing.T) {
	service := new(mockPizzaService)
	router := setupControllerRouter(service)

	for _, path := range []string{"/custom-pizza/abc", "/custom-pizza/-1", "/custom-pizza/1.5"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := perform(router, method, path, `{"name":"x"}`)

			assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", method, path)
			assert.Equal(t, models.ErrMsgInvalidPizzaID, decodeError(t, w))
		}
	}
	assert.Empty(t, service.Calls)
}

func TestUpdateAndDeleteCustomPizza(t *testing.T) {
	updated := samplePizza()
	updated.Name = "Cheese Only"
	updated.IngredientNames = []string{"cheese"}
	updated.FinalPrice = decimal.RequireFromString("6.50")

	service := new(mockPizzaService)
	service.On("UpdatePizza", mock.Anything, uint(3), "Cheese Only", []string{"cheese"}).Return(updated, nil)
	service.On("DeletePizza", mock.Anything, uint(3)).Return(nil)
	router := setupControllerRouter(service)

	w := perform(router, http.MethodPut, "/custom-pizza/3", `{"name":"Cheese Only","ingredient_names":["cheese"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var response models.CustomPizzaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.MsgPizzaUpdated, response.Message)
	assert.True(t, decimal.RequireFromString("6.50").Equal(response.CustomPizza.FinalPrice))

	w = perform(router, http.MethodDelete, "/custom-pizza/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var message models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &message))
	assert.Equal(t, models.MsgPizzaDeleted, message.Message)
	service.AssertExpectations(t)
}

func TestGetCustomPizzaByID(t *testing.T) {
	service := new(mockPizzaService)
	service.On("GetPizza", mock.Anything, uint(3)).Return(samplePizza(), nil)
	router := setupControllerRouter(service)

	w := perform(router, http.MethodGet, "/custom-pizza/3", "")

	require.Equal(t, http.StatusOK, w.Code)
	var pizza models.CustomPizza
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pizza))
	assert.Equal(t, "Olive Lover", pizza.Name)
	assert.Equal(t, []string{"cheese", "olives"}, []string(pizza.IngredientNames))
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthController(func() error { return nil }).HealthCheck)

		w := perform(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("database down", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthController(func() error { return errors.New("down") }).HealthCheck)

		w := perform(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"down"`)
	})
}
