package service

import (
	"context"
	"io"

	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	pkgdto "github.com/shopright/backend/pkg/dto"
)

// EventProducer publishes domain events to the message broker.
type EventProducer interface {
	WriteMessage(msg []byte, key string) error
}

// MediaStore is the third-party media host holding product images.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader) (url string, err error)
	Destroy(ctx context.Context, url string) error
}

type ProductService interface {
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, user domain.User, req dto.OrderRequest) (order domain.Order, err error)
	GetUserOrders(ctx context.Context, user domain.User) (data []dto.OrderResponse, err error)
}

type ReviewService interface {
	AddReview(ctx context.Context, user domain.User, req dto.ReviewRequest) (review domain.Review, err error)
	DeleteReview(ctx context.Context, user domain.User, reviewID string) (err error)
}

type CartService interface {
	GetCart(ctx context.Context, user domain.User) (cart domain.Cart, err error)
	AddCartItem(ctx context.Context, user domain.User, req dto.AddCartItemRequest) (cart domain.Cart, err error)
	UpdateCartItem(ctx context.Context, user domain.User, productID string, req dto.UpdateCartItemRequest) (cart domain.Cart, err error)
	RemoveCartItem(ctx context.Context, user domain.User, productID string) (cart domain.Cart, err error)
	ClearCart(ctx context.Context, user domain.User) (cart domain.Cart, err error)
}

type UserService interface {
	GetUserByExternalID(ctx context.Context, externalID string) (user domain.User, err error)
	AddAddress(ctx context.Context, user domain.User, req dto.AddressRequest) (addresses []domain.Address, err error)
	GetAddresses(ctx context.Context, user domain.User) (addresses []domain.Address, err error)
	UpdateAddress(ctx context.Context, user domain.User, addressID string, req dto.UpdateAddressRequest) (addresses []domain.Address, err error)
	DeleteAddress(ctx context.Context, user domain.User, addressID string) (addresses []domain.Address, err error)
	AddToWishlist(ctx context.Context, user domain.User, req dto.WishlistRequest) (wishlist []domain.Product, err error)
	RemoveFromWishlist(ctx context.Context, user domain.User, productID string) (wishlist []domain.Product, err error)
	GetWishlist(ctx context.Context, user domain.User) (wishlist []domain.Product, err error)
	SyncUser(ctx context.Context, event dto.IdentityUserEvent) (err error)
	RemoveUser(ctx context.Context, externalID string) (err error)
	ConsumeIdentityEvents()
}

type AdminService interface {
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest, images []io.Reader) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest, images []io.Reader) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (order domain.Order, err error)
	GetCustomers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error)
	GetDashboardStats(ctx context.Context) (stats dto.DashboardStatsResponse, err error)
}
