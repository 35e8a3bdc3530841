package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/shopright/backend/config"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/repository"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"github.com/shopright/backend/pkg/errs"
	"github.com/shopright/backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxProductImages = 3

type AdminServiceImpl struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	mediaStore  MediaStore
	producer    EventProducer
	config      *config.Config
}

func CreateAdminService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository, mediaStore MediaStore, producer EventProducer, config *config.Config) AdminService {
	return &AdminServiceImpl{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		mediaStore:  mediaStore,
		producer:    producer,
		config:      config,
	}
}

func (s *AdminServiceImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	return s.productRepo.GetProducts(ctx, param)
}

func (s *AdminServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest, images []io.Reader) (product domain.Product, err error) {
	if req.Name == "" || req.Description == "" || req.Category == "" || req.Price <= 0 || req.Stock < 0 {
		return product, errs.ErrClient
	}

	if len(images) == 0 {
		return product, errs.ErrImageRequired
	}

	if len(images) > maxProductImages {
		return product, errs.ErrTooManyImages
	}

	imageURLs, err := s.uploadImages(ctx, images)
	if err != nil {
		return
	}

	product = domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Images:      imageURLs,
	}

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = productID

	return product, nil
}

func (s *AdminServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest, images []io.Reader) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrClient
	}

	if len(images) > maxProductImages {
		return product, errs.ErrTooManyImages
	}

	product, err = s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if len(images) > 0 {
		imageURLs, err := s.uploadImages(ctx, images)
		if err != nil {
			return domain.Product{}, err
		}

		for _, url := range product.Images {
			if err := s.mediaStore.Destroy(ctx, url); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to remove replaced image")
			}
		}

		product.Images = imageURLs
	}

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *AdminServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	for _, url := range product.Images {
		if err := s.mediaStore.Destroy(ctx, url); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("Failed to remove image")
		}
	}

	return s.productRepo.DeleteProduct(ctx, productID)
}

func (s *AdminServiceImpl) GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error) {
	return s.orderRepo.GetOrders(ctx, param)
}

// UpdateOrderStatus moves an order along pending -> shipped -> delivered,
// stamping shipped_at and delivered_at the first time each status is reached.
func (s *AdminServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, status string) (order domain.Order, err error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return order, errs.ErrClient
	}

	if !domain.IsValidOrderStatus(status) {
		return order, errs.ErrInvalidOrderStatus
	}

	order, err = s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return
	}

	order.Status = status

	now := timeNow()
	if status == domain.OrderStatusShipped && order.ShippedAt == nil {
		order.ShippedAt = &now
	}
	if status == domain.OrderStatusDelivered && order.DeliveredAt == nil {
		order.DeliveredAt = &now
	}

	if err = s.orderRepo.UpdateOrderStatus(ctx, order); err != nil {
		return domain.Order{}, err
	}

	s.publishStatusEvent(ctx, order)

	if status == domain.OrderStatusDelivered {
		s.notifyCustomer(ctx, order)
	}

	return order, nil
}

func (s *AdminServiceImpl) GetCustomers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error) {
	return s.userRepo.GetUsers(ctx, param)
}

func (s *AdminServiceImpl) GetDashboardStats(ctx context.Context) (stats dto.DashboardStatsResponse, err error) {
	if stats.TotalRevenue, err = s.orderRepo.SumOrderRevenue(ctx); err != nil {
		return
	}

	if stats.TotalOrders, err = s.orderRepo.CountOrders(ctx); err != nil {
		return
	}

	if stats.TotalCustomers, err = s.userRepo.CountUsers(ctx); err != nil {
		return
	}

	if stats.TotalProducts, err = s.productRepo.CountProducts(ctx); err != nil {
		return
	}

	return stats, nil
}

func (s *AdminServiceImpl) uploadImages(ctx context.Context, images []io.Reader) ([]string, error) {
	imageURLs := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.mediaStore.Upload(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, url)
	}

	return imageURLs, nil
}

func (s *AdminServiceImpl) publishStatusEvent(ctx context.Context, order domain.Order) {
	kafkaMsg := dto.KafkaMessage{
		EventType: "order_status_updated",
		Data: dto.OrderEvent{
			OrderID:     order.ID.Hex(),
			OrderNumber: order.OrderNumber,
			ExternalID:  order.ExternalID,
			TotalPrice:  order.TotalPrice,
			Status:      order.Status,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishStatusEvent").Msg("")
		return
	}

	publishEvent(ctx, s.producer, jsonMsg, order.OrderNumber)
}

// notifyCustomer emails the order's owner about the status change. Best
// effort, and a no-op when SMTP is not configured.
func (s *AdminServiceImpl) notifyCustomer(ctx context.Context, order domain.Order) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	user, err := s.userRepo.GetUserByExternalID(ctx, order.ExternalID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "notifyCustomer").Msg("")
		return
	}

	message := utils.ComposeOrderStatusEmail(s.config.SMTPConfig.Sender, user.Email, order.OrderNumber, order.Status)
	if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "notifyCustomer").Msg("Failed to send status email")
	}
}
