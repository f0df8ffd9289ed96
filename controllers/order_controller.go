package controllers

import (
	"net/http"

	"canteen-api/models"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Creates an order with a snapshot of the chosen menu items
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.OrderPlacedResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
		return
	}

	order, err := ctrl.orders.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.OrderPlacedResponse{
		Message: "Order placed successfully",
		Order:   order,
	})
}

// GetAllOrders godoc
// @Summary List all orders
// @Description Privileged listing, newest first
// @Tags Orders
// @Security AdminKey
// @Produce json
// @Success 200 {array} models.Order
// @Failure 403 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), "", "")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrdersByEmail godoc
// @Summary List a student's orders
// @Tags Orders
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {array} models.Order
// @Router /orders/email/{email} [get]
func (ctrl *OrderController) GetOrdersByEmail(c *gin.Context) {
	orders, err := ctrl.orders.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderId} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orders.GetByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Moves an order to any status in the defined enum
// @Tags Orders
// @Security AdminKey
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.OrderPlacedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderId}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Status is required"})
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OrderPlacedResponse{
		Message: "Order status updated",
		Order:   order,
	})
}
