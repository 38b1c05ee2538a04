package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/shopease/apperrors"
	"github.com/shopease/shopease/middleware"
	"github.com/shopease/shopease/models"
	"github.com/shopease/shopease/services"
)

// OrderService is the contract the controller needs from the order service.
type OrderService interface {
	CreateOrder(ctx context.Context, userID string, req *services.CreateOrderRequest) (*models.Order, *apperrors.Error)
	MyOrders(ctx context.Context, userID string) ([]models.Order, *apperrors.Error)
}

type OrderController struct {
	orders OrderService
}

func NewOrderController(orders OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder handles POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, appErr := oc.orders.CreateOrder(c.Request.Context(), userID, &req)
	if appErr != nil {
		renderError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders handles GET /api/orders/myorders
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	orders, appErr := oc.orders.MyOrders(c.Request.Context(), userID)
	if appErr != nil {
		renderError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// renderError writes an application error as the API's JSON error shape.
// Server faults additionally expose the underlying error string.
func renderError(c *gin.Context, appErr *apperrors.Error) {
	body := gin.H{"message": appErr.Message}
	if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}
	c.JSON(appErr.Code, body)
}
