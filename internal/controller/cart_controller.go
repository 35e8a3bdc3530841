package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/service"
	"github.com/shopright/backend/pkg/response"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService) {
	c := CartController{service: service}

	e.GET("/cart", c.GetCart)
	e.POST("/cart", c.AddCartItem)
	e.PUT("/cart/:productId", c.UpdateCartItem)
	e.DELETE("/cart/:productId", c.RemoveCartItem)
	e.DELETE("/cart", c.ClearCart)
}

func (c *CartController) GetCart(e echo.Context) error {
	cart, err := c.service.GetCart(e.Request().Context(), currentUser(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", cart)
}

func (c *CartController) AddCartItem(e echo.Context) error {
	payload := dto.AddCartItemRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	cart, err := c.service.AddCartItem(e.Request().Context(), currentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Item added to cart", cart)
}

func (c *CartController) UpdateCartItem(e echo.Context) error {
	payload := dto.UpdateCartItemRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	cart, err := c.service.UpdateCartItem(e.Request().Context(), currentUser(e), e.Param("productId"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Cart item updated", cart)
}

func (c *CartController) RemoveCartItem(e echo.Context) error {
	cart, err := c.service.RemoveCartItem(e.Request().Context(), currentUser(e), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Item removed from cart", cart)
}

func (c *CartController) ClearCart(e echo.Context) error {
	cart, err := c.service.ClearCart(e.Request().Context(), currentUser(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Cart cleared", cart)
}
