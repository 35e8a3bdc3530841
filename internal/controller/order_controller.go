package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/service"
	"github.com/shopright/backend/pkg/response"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService) {
	c := OrderController{service: service}

	e.POST("/orders", c.AddOrder)
	e.GET("/orders", c.GetUserOrders)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	order, err := c.service.AddOrder(e.Request().Context(), currentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Order created successfully", order)
}

func (c *OrderController) GetUserOrders(e echo.Context) error {
	orders, err := c.service.GetUserOrders(e.Request().Context(), currentUser(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", orders)
}
