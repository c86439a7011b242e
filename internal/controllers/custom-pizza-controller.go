package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/custom-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/custom-pizza-api/internal/models"
	"github.com/franciscosanchezn/custom-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// CustomPizzaController handles HTTP requests related to custom pizzas and their ingredients
type CustomPizzaController interface {
	// CreateCustomPizza prices and creates a new custom pizza
	CreateCustomPizza(c *gin.Context)
	// GetIngredients lists the ingredient catalog
	GetIngredients(c *gin.Context)
	// GetCustomPizzas lists every custom pizza
	GetCustomPizzas(c *gin.Context)
	// GetCustomPizzaByID retrieves a custom pizza by its ID
	GetCustomPizzaByID(c *gin.Context)
	// UpdateCustomPizza replaces and reprices an existing custom pizza
	UpdateCustomPizza(c *gin.Context)
	// DeleteCustomPizza deletes a custom pizza by its ID
	DeleteCustomPizza(c *gin.Context)
}

type customPizzaController struct {
	service services.CustomPizzaService
}

// NewCustomPizzaController creates a new instance of CustomPizzaController
func NewCustomPizzaController(service services.CustomPizzaService) CustomPizzaController {
	return &customPizzaController{service: service}
}

// CreateCustomPizza godoc
// @Summary Create a custom pizza
// @Description Create a custom pizza from ingredient names. The final price is computed by the server as base fee plus ingredient costs; any client price is ignored.
// @Tags custom-pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CustomPizzaRequest true "Pizza name and ingredient names"
// @Success 201 {object} models.CustomPizzaResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/custom-pizza [post]
func (c *customPizzaController) CreateCustomPizza(ctx *gin.Context) {
	var req models.CustomPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), req.Name, req.IngredientNames)
	if err != nil {
		respondWithError(ctx, err, "Error creating custom pizza")
		return
	}
	ctx.JSON(http.StatusCreated, models.CustomPizzaResponse{
		Message:     models.MsgPizzaCreated,
		CustomPizza: pizza,
	})
}

// GetIngredients godoc
// @Summary Get all ingredients
// @Description Get the full ingredient catalog
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.ErrorResponse
// @Router /api/ingredients [get]
func (c *customPizzaController) GetIngredients(ctx *gin.Context) {
	ingredients, err := c.service.ListIngredients(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err, "Error fetching ingredients")
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// GetCustomPizzas godoc
// @Summary Get all custom pizzas
// @Description Get every custom pizza with its stored final price
// @Tags custom-pizzas
// @Produce json
// @Success 200 {array} models.CustomPizza
// @Failure 500 {object} models.ErrorResponse
// @Router /api/custom-pizzas [get]
func (c *customPizzaController) GetCustomPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err, "Error fetching custom pizzas")
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetCustomPizzaByID godoc
// @Summary Get custom pizza by ID
// @Description Get a single custom pizza by its ID
// @Tags custom-pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.CustomPizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/custom-pizza/{id} [get]
func (c *customPizzaController) GetCustomPizzaByID(ctx *gin.Context) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return
	}

	pizza, err := c.service.GetPizza(ctx.Request.Context(), pizzaID)
	if err != nil {
		respondWithError(ctx, err, "Error fetching pizza details")
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// UpdateCustomPizza godoc
// @Summary Update a custom pizza
// @Description Replace name and ingredients of a custom pizza. The final price is recomputed from the current catalog.
// @Tags custom-pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.CustomPizzaRequest true "Pizza name and ingredient names"
// @Success 200 {object} models.CustomPizzaResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/custom-pizza/{id} [put]
func (c *customPizzaController) UpdateCustomPizza(ctx *gin.Context) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return
	}

	var req models.CustomPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), pizzaID, req.Name, req.IngredientNames)
	if err != nil {
		respondWithError(ctx, err, "Error updating custom pizza")
		return
	}
	ctx.JSON(http.StatusOK, models.CustomPizzaResponse{
		Message:     models.MsgPizzaUpdated,
		CustomPizza: pizza,
	})
}

// DeleteCustomPizza godoc
// @Summary Delete a custom pizza
// @Description Delete a custom pizza by its ID
// @Tags custom-pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/custom-pizza/{id} [delete]
func (c *customPizzaController) DeleteCustomPizza(ctx *gin.Context) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), pizzaID); err != nil {
		respondWithError(ctx, err, "Error deleting pizza")
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: models.MsgPizzaDeleted})
}

// parsePizzaID reads the :id path parameter, answering 400 itself when it is not a positive integer
func parsePizzaID(ctx *gin.Context) (uint, bool) {
	pizzaID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrMsgInvalidPizzaID))
		return 0, false
	}
	return uint(pizzaID), true
}

// respondWithError maps service errors to status codes. Unknown errors are logged and hidden behind a 500.
func respondWithError(ctx *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.ErrMsgPizzaNotFound))
	case errors.Is(err, services.ErrInvalidPizzaName):
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrMsgInvalidPizzaName))
	default:
		_ = ctx.Error(err)
		log.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(ctx),
			"path":       ctx.Request.URL.Path,
		}).WithError(err).Error(logMessage)
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.ErrMsgInternalServer))
	}
}

// bindingErrorMessage turns a binding failure into a client message
func bindingErrorMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			if fieldError.Field() == "Name" {
				return models.ErrMsgInvalidPizzaName
			}
		}
	}
	return models.ErrMsgInvalidRequestBody
}
