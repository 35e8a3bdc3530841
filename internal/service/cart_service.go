package service

import (
	"context"

	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/repository"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartServiceImpl mutates carts with advisory stock checks against current
// stock. Only order creation validates stock authoritatively; an intervening
// sale can still invalidate a cart before checkout.
type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, user domain.User) (cart domain.Cart, err error) {
	return s.getOrCreateCart(ctx, user)
}

func (s *CartServiceImpl) AddCartItem(ctx context.Context, user domain.User, req dto.AddCartItemRequest) (cart domain.Cart, err error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return cart, errs.ErrClient
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if product.Stock < quantity {
		return cart, errs.ErrInsufficientStock
	}

	cart, err = s.getOrCreateCart(ctx, user)
	if err != nil {
		return
	}

	if idx := cart.FindItem(productID); idx != -1 {
		// existing line grows by one, re-checked against current stock
		newQuantity := cart.Items[idx].Quantity + 1
		if product.Stock < newQuantity {
			return domain.Cart{}, errs.ErrInsufficientStock
		}
		cart.Items[idx].Quantity = newQuantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	if err = s.cartRepo.SetCartItems(ctx, cart.ID, cart.Items); err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

func (s *CartServiceImpl) UpdateCartItem(ctx context.Context, user domain.User, productID string, req dto.UpdateCartItemRequest) (cart domain.Cart, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return cart, errs.ErrClient
	}

	cart, err = s.cartRepo.GetCartByExternalID(ctx, user.ExternalID)
	if err != nil {
		return
	}

	idx := cart.FindItem(id)
	if idx == -1 {
		return domain.Cart{}, errs.ErrItemNotInCart
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}

	if product.Stock < req.Quantity {
		return domain.Cart{}, errs.ErrInsufficientStock
	}

	cart.Items[idx].Quantity = req.Quantity

	if err = s.cartRepo.SetCartItems(ctx, cart.ID, cart.Items); err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

func (s *CartServiceImpl) RemoveCartItem(ctx context.Context, user domain.User, productID string) (cart domain.Cart, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return cart, errs.ErrClient
	}

	cart, err = s.cartRepo.GetCartByExternalID(ctx, user.ExternalID)
	if err != nil {
		return
	}

	items := make([]domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != id {
			items = append(items, item)
		}
	}
	cart.Items = items

	if err = s.cartRepo.SetCartItems(ctx, cart.ID, cart.Items); err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

func (s *CartServiceImpl) ClearCart(ctx context.Context, user domain.User) (cart domain.Cart, err error) {
	cart, err = s.cartRepo.GetCartByExternalID(ctx, user.ExternalID)
	if err != nil {
		return
	}

	cart.Items = []domain.CartItem{}

	if err = s.cartRepo.SetCartItems(ctx, cart.ID, cart.Items); err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

func (s *CartServiceImpl) getOrCreateCart(ctx context.Context, user domain.User) (cart domain.Cart, err error) {
	cart, err = s.cartRepo.GetCartByExternalID(ctx, user.ExternalID)
	if err == nil {
		return cart, nil
	}
	if err != errs.ErrCartNotFound {
		return
	}

	cart = domain.Cart{
		UserID:     user.ID,
		ExternalID: user.ExternalID,
		Items:      []domain.CartItem{},
	}

	cartID, err := s.cartRepo.AddCart(ctx, cart)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.ID = cartID

	return cart, nil
}
