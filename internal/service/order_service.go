package service

import (
	"context"
	"encoding/json"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/repository"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	trx         repository.TrxHandler
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	producer    EventProducer
}

func CreateOrderService(trx repository.TrxHandler, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository, producer EventProducer) OrderService {
	return &OrderServiceImpl{
		trx:         trx,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		producer:    producer,
	}
}

// AddOrder validates every line item against live stock, inserts the order and
// decrements stock, all inside one transaction. Any failure aborts the whole
// operation with no visible effect.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, user domain.User, req dto.OrderRequest) (order domain.Order, err error) {
	orderItems := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return order, errs.ErrClient
		}

		orderItems = append(orderItems, domain.OrderItem{
			ProductID: productID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	order = domain.Order{
		UserID:      user.ID,
		ExternalID:  user.ExternalID,
		OrderNumber: ulid.Make().String(),
		OrderItems:  orderItems,
		ShippingAddress: domain.ShippingAddress{
			FullName:      req.ShippingAddress.FullName,
			StreetAddress: req.ShippingAddress.StreetAddress,
			City:          req.ShippingAddress.City,
			State:         req.ShippingAddress.State,
			ZipCode:       req.ShippingAddress.ZipCode,
			PhoneNumber:   req.ShippingAddress.PhoneNumber,
		},
		PaymentResult: domain.PaymentResult{
			ID:     req.PaymentResult.ID,
			Status: req.PaymentResult.Status,
		},
		TotalPrice: req.TotalPrice,
		Status:     domain.OrderStatusPending,
	}

	err = s.trx.HandleTrx(ctx, func(trxCtx context.Context) error {
		for _, item := range order.OrderItems {
			product, err := s.productRepo.GetProductByID(trxCtx, item.ProductID)
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errs.ErrInsufficientStock
			}
		}

		orderID, err := s.orderRepo.AddOrder(trxCtx, order)
		if err != nil {
			return err
		}
		order.ID = orderID

		for _, item := range order.OrderItems {
			if err := s.productRepo.DecrementProductStock(trxCtx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.publishOrderEvent(ctx, "order_created", order)

	return order, nil
}

// GetUserOrders returns the caller's orders newest-first, each annotated with
// whether it has already been reviewed.
func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, user domain.User) (data []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrdersByExternalID(ctx, user.ExternalID)
	if err != nil {
		return
	}

	orderIDs := make([]primitive.ObjectID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	reviewedOrderIDs := map[primitive.ObjectID]struct{}{}
	if len(orderIDs) != 0 {
		reviews, err := s.reviewRepo.GetReviewsByOrderIDs(ctx, orderIDs)
		if err != nil {
			return nil, err
		}

		for _, review := range reviews {
			reviewedOrderIDs[review.OrderID] = struct{}{}
		}
	}

	data = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		_, hasReviewed := reviewedOrderIDs[order.ID]
		data = append(data, dto.OrderResponse{
			Order:       order,
			HasReviewed: hasReviewed,
		})
	}

	return data, nil
}

// publishOrderEvent is best effort; the transaction has already committed, so
// a broker outage must not fail the request.
func (s *OrderServiceImpl) publishOrderEvent(ctx context.Context, eventType string, order domain.Order) {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
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
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderEvent").Msg("")
		return
	}

	publishEvent(ctx, s.producer, jsonMsg, order.OrderNumber)
}
