package repository

import (
	"context"

	"github.com/shopright/backend/internal/domain"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrxHandler runs fn inside a single multi-document transaction. Every
// repository call made with the callback's context joins that transaction;
// fn returning an error aborts it with no partial writes visible.
type TrxHandler interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error)
	CountProducts(ctx context.Context) (count int64, err error)

	// DecrementProductStock applies a relative decrement guarded by
	// stock >= quantity; it fails with errs.ErrInsufficientStock when the
	// guard does not match, so concurrent orders can never drive stock
	// negative.
	DecrementProductStock(ctx context.Context, id primitive.ObjectID, quantity int64) (err error)
	SetProductRating(ctx context.Context, id primitive.ObjectID, averageRating float64, totalReviews int64) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (order domain.Order, err error)
	GetOrdersByExternalID(ctx context.Context, externalID string) (data []domain.Order, err error)
	GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, data domain.Order) (err error)
	CountOrders(ctx context.Context) (count int64, err error)
	SumOrderRevenue(ctx context.Context) (total float64, err error)
}

type ReviewRepository interface {
	// UpsertReview creates or replaces the caller's review of a product,
	// keyed on the (product_id, user_id) pair.
	UpsertReview(ctx context.Context, data domain.Review) (review domain.Review, err error)
	GetReviewByID(ctx context.Context, id primitive.ObjectID) (review domain.Review, err error)
	GetReviewsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Review, err error)
	GetReviewsByOrderIDs(ctx context.Context, orderIDs []primitive.ObjectID) (data []domain.Review, err error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) (err error)
}

type CartRepository interface {
	AddCart(ctx context.Context, data domain.Cart) (id primitive.ObjectID, err error)
	GetCartByExternalID(ctx context.Context, externalID string) (cart domain.Cart, err error)
	SetCartItems(ctx context.Context, id primitive.ObjectID, items []domain.CartItem) (err error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, data domain.User) (err error)
	GetUserByExternalID(ctx context.Context, externalID string) (user domain.User, err error)
	DeleteUserByExternalID(ctx context.Context, externalID string) (err error)
	GetUsers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error)
	CountUsers(ctx context.Context) (count int64, err error)
	SetUserAddresses(ctx context.Context, id primitive.ObjectID, addresses []domain.Address) (err error)
	SetUserWishlist(ctx context.Context, id primitive.ObjectID, wishlist []primitive.ObjectID) (err error)
}
