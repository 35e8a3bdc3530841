package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/service"
	"github.com/shopright/backend/pkg/response"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Group, service service.ReviewService) {
	c := ReviewController{service: service}

	e.POST("/reviews", c.AddReview)
	e.DELETE("/reviews/:reviewId", c.DeleteReview)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	if ok, err := bindAndValidate(e, &payload); !ok {
		return err
	}

	review, err := c.service.AddReview(e.Request().Context(), currentUser(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Review saved successfully", review)
}

func (c *ReviewController) DeleteReview(e echo.Context) error {
	err := c.service.DeleteReview(e.Request().Context(), currentUser(e), e.Param("reviewId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Review deleted successfully", nil)
}
