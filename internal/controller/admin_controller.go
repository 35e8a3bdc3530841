package controller

import (
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/service"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"github.com/shopright/backend/pkg/errs"
	"github.com/shopright/backend/pkg/response"
)

type AdminController struct {
	service service.AdminService
}

func CreateAdminController(e *echo.Group, service service.AdminService) {
	c := AdminController{service: service}

	e.GET("/products", c.GetProducts)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)

	e.GET("/orders", c.GetOrders)
	e.PATCH("/orders/:orderId/status", c.UpdateOrderStatus)

	e.GET("/customers", c.GetCustomers)
	e.GET("/stats", c.GetDashboardStats)
}

// openImages opens the uploaded product images; callers must invoke the
// returned closer once the readers have been consumed.
func openImages(e echo.Context) (images []io.Reader, closeAll func(), err error) {
	form, err := e.MultipartForm()
	if err != nil {
		return nil, func() {}, errs.ErrClient
	}

	var files []multipart.File
	closeAll = func() {
		for _, f := range files {
			f.Close()
		}
	}

	for _, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, errs.ErrClient
		}
		files = append(files, file)
		images = append(images, file)
	}

	return images, closeAll, nil
}

func (c *AdminController) GetProducts(e echo.Context) error {
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

func (c *AdminController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	images, closeAll, err := openImages(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	defer closeAll()

	product, err := c.service.AddProduct(e.Request().Context(), payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created successfully", product)
}

func (c *AdminController) UpdateProduct(e echo.Context) error {
	payload := dto.UpdateProductRequest{}
	if err := e.Bind(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	// Images are optional on update; a request without a multipart body only
	// patches the scalar fields.
	var images []io.Reader
	if form, err := e.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
		opened, closeAll, err := openImages(e)
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}
		defer closeAll()
		images = opened
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated successfully", product)
}

func (c *AdminController) DeleteProduct(e echo.Context) error {
	if err := c.service.DeleteProduct(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", nil)
}

func (c *AdminController) GetOrders(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	orders, err := c.service.GetOrders(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", orders)
}

func (c *AdminController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	order, err := c.service.UpdateOrderStatus(e.Request().Context(), e.Param("orderId"), payload.Status)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Order status updated", order)
}

func (c *AdminController) GetCustomers(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	customers, err := c.service.GetCustomers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", customers)
}

func (c *AdminController) GetDashboardStats(e echo.Context) error {
	stats, err := c.service.GetDashboardStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", stats)
}
