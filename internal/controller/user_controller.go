package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/service"
	"github.com/shopright/backend/pkg/response"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	c := UserController{service: service}

	e.GET("/users/addresses", c.GetAddresses)
	e.POST("/users/addresses", c.AddAddress)
	e.PUT("/users/addresses/:addressId", c.UpdateAddress)
	e.DELETE("/users/addresses/:addressId", c.DeleteAddress)

	e.GET("/users/wishlist", c.GetWishlist)
	e.POST("/users/wishlist", c.AddToWishlist)
	e.DELETE("/users/wishlist/:productId", c.RemoveFromWishlist)
}

func (c *UserController) GetAddresses(e echo.Context) error {
	addresses, err := c.service.GetAddresses(e.Request().Context(), currentUser(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", addresses)
}

func (c *UserController) AddAddress(e echo.Context) error {
	payload := dto.AddressRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	addresses, err := c.service.AddAddress(e.Request().Context(), currentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Address added successfully", addresses)
}

func (c *UserController) UpdateAddress(e echo.Context) error {
	payload := dto.UpdateAddressRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	addresses, err := c.service.UpdateAddress(e.Request().Context(), currentUser(e), e.Param("addressId"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Address updated successfully", addresses)
}

func (c *UserController) DeleteAddress(e echo.Context) error {
	addresses, err := c.service.DeleteAddress(e.Request().Context(), currentUser(e), e.Param("addressId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Address deleted successfully", addresses)
}

func (c *UserController) GetWishlist(e echo.Context) error {
	wishlist, err := c.service.GetWishlist(e.Request().Context(), currentUser(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", wishlist)
}

func (c *UserController) AddToWishlist(e echo.Context) error {
	payload := dto.WishlistRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	wishlist, err := c.service.AddToWishlist(e.Request().Context(), currentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product added to wishlist", wishlist)
}

func (c *UserController) RemoveFromWishlist(e echo.Context) error {
	wishlist, err := c.service.RemoveFromWishlist(e.Request().Context(), currentUser(e), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product removed from wishlist", wishlist)
}
