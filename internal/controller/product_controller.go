package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/service"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"github.com/shopright/backend/pkg/response"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{service: service}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	products, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", products)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", product)
}
