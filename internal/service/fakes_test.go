package service

import (
	"context"
	"fmt"
	"io"

	"github.com/shopright/backend/internal/domain"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore backs the in-memory repositories. All fakes built from the same
// store see each other's writes, like collections in one database.
type memStore struct {
	products map[primitive.ObjectID]domain.Product
	orders   []domain.Order
	reviews  []domain.Review
	carts    []domain.Cart
	users    []domain.User
}

func newMemStore() *memStore {
	return &memStore{products: map[primitive.ObjectID]domain.Product{}}
}

func (s *memStore) clone() *memStore {
	snapshot := &memStore{products: make(map[primitive.ObjectID]domain.Product, len(s.products))}
	for id, product := range s.products {
		snapshot.products[id] = product
	}
	snapshot.orders = append([]domain.Order(nil), s.orders...)
	snapshot.reviews = append([]domain.Review(nil), s.reviews...)
	snapshot.carts = append([]domain.Cart(nil), s.carts...)
	snapshot.users = append([]domain.User(nil), s.users...)
	return snapshot
}

func (s *memStore) seedProduct(stock int64) domain.Product {
	product := domain.Product{
		ID:    primitive.NewObjectID(),
		Name:  fmt.Sprintf("product-%d", len(s.products)+1),
		Price: 10,
		Stock: stock,
	}
	s.products[product.ID] = product
	return product
}

// fakeTrxHandler snapshots the store before running fn and restores it when fn
// fails, so tests observe the same all-or-nothing behavior as a real
// transaction.
type fakeTrxHandler struct {
	store *memStore
}

func (t *fakeTrxHandler) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := t.store.clone()
	if err := fn(ctx); err != nil {
		*t.store = *snapshot
		return err
	}
	return nil
}

type fakeProductRepo struct {
	store *memStore
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.store.products[data.ID] = data
	return data.ID, nil
}

func (r *fakeProductRepo) GetProducts(ctx context.Context, param pkgdto.Filter) ([]domain.Product, error) {
	data := make([]domain.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		data = append(data, product)
	}
	return data, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	product, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	if _, ok := r.store.products[data.ID]; !ok {
		return errs.ErrProductNotFound
	}
	r.store.products[data.ID] = data
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.store.products[id]; !ok {
		return errs.ErrProductNotFound
	}
	delete(r.store.products, id)
	return nil
}

func (r *fakeProductRepo) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(r.store.products)), nil
}

func (r *fakeProductRepo) DecrementProductStock(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	product, ok := r.store.products[id]
	if !ok || product.Stock < quantity {
		return errs.ErrInsufficientStock
	}
	product.Stock -= quantity
	r.store.products[id] = product
	return nil
}

func (r *fakeProductRepo) SetProductRating(ctx context.Context, id primitive.ObjectID, averageRating float64, totalReviews int64) error {
	product, ok := r.store.products[id]
	if !ok {
		return errs.ErrProductNotFound
	}
	product.AverageRating = averageRating
	product.TotalReviews = totalReviews
	r.store.products[id] = product
	return nil
}

type fakeOrderRepo struct {
	store *memStore
}

func (r *fakeOrderRepo) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.store.orders = append(r.store.orders, data)
	return data.ID, nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	for _, order := range r.store.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return domain.Order{}, errs.ErrOrderNotFound
}

func (r *fakeOrderRepo) GetOrdersByExternalID(ctx context.Context, externalID string) ([]domain.Order, error) {
	data := []domain.Order{}
	for i := len(r.store.orders) - 1; i >= 0; i-- {
		if r.store.orders[i].ExternalID == externalID {
			data = append(data, r.store.orders[i])
		}
	}
	return data, nil
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context, param pkgdto.Filter) ([]domain.Order, error) {
	return append([]domain.Order{}, r.store.orders...), nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, data domain.Order) error {
	for i, order := range r.store.orders {
		if order.ID == data.ID {
			r.store.orders[i] = data
			return nil
		}
	}
	return errs.ErrOrderNotFound
}

func (r *fakeOrderRepo) CountOrders(ctx context.Context) (int64, error) {
	return int64(len(r.store.orders)), nil
}

func (r *fakeOrderRepo) SumOrderRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, order := range r.store.orders {
		total += order.TotalPrice
	}
	return total, nil
}

type fakeReviewRepo struct {
	store *memStore
}

func (r *fakeReviewRepo) UpsertReview(ctx context.Context, data domain.Review) (domain.Review, error) {
	for i, review := range r.store.reviews {
		if review.ProductID == data.ProductID && review.UserID == data.UserID {
			review.OrderID = data.OrderID
			review.Rating = data.Rating
			r.store.reviews[i] = review
			return review, nil
		}
	}

	data.ID = primitive.NewObjectID()
	r.store.reviews = append(r.store.reviews, data)
	return data, nil
}

func (r *fakeReviewRepo) GetReviewByID(ctx context.Context, id primitive.ObjectID) (domain.Review, error) {
	for _, review := range r.store.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return domain.Review{}, errs.ErrReviewNotFound
}

func (r *fakeReviewRepo) GetReviewsByProductID(ctx context.Context, productID primitive.ObjectID) ([]domain.Review, error) {
	data := []domain.Review{}
	for _, review := range r.store.reviews {
		if review.ProductID == productID {
			data = append(data, review)
		}
	}
	return data, nil
}

func (r *fakeReviewRepo) GetReviewsByOrderIDs(ctx context.Context, orderIDs []primitive.ObjectID) ([]domain.Review, error) {
	wanted := map[primitive.ObjectID]struct{}{}
	for _, id := range orderIDs {
		wanted[id] = struct{}{}
	}

	data := []domain.Review{}
	for _, review := range r.store.reviews {
		if _, ok := wanted[review.OrderID]; ok {
			data = append(data, review)
		}
	}
	return data, nil
}

func (r *fakeReviewRepo) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	for i, review := range r.store.reviews {
		if review.ID == id {
			r.store.reviews = append(r.store.reviews[:i], r.store.reviews[i+1:]...)
			return nil
		}
	}
	return errs.ErrReviewNotFound
}

type fakeCartRepo struct {
	store *memStore
}

func (r *fakeCartRepo) AddCart(ctx context.Context, data domain.Cart) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.store.carts = append(r.store.carts, data)
	return data.ID, nil
}

func (r *fakeCartRepo) GetCartByExternalID(ctx context.Context, externalID string) (domain.Cart, error) {
	for _, cart := range r.store.carts {
		if cart.ExternalID == externalID {
			return cart, nil
		}
	}
	return domain.Cart{}, errs.ErrCartNotFound
}

func (r *fakeCartRepo) SetCartItems(ctx context.Context, id primitive.ObjectID, items []domain.CartItem) error {
	for i, cart := range r.store.carts {
		if cart.ID == id {
			cart.Items = items
			r.store.carts[i] = cart
			return nil
		}
	}
	return errs.ErrCartNotFound
}

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) UpsertUser(ctx context.Context, data domain.User) error {
	for i, user := range r.store.users {
		if user.ExternalID == data.ExternalID {
			user.Email = data.Email
			user.Name = data.Name
			user.ImageURL = data.ImageURL
			r.store.users[i] = user
			return nil
		}
	}

	data.ID = primitive.NewObjectID()
	r.store.users = append(r.store.users, data)
	return nil
}

func (r *fakeUserRepo) GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	for _, user := range r.store.users {
		if user.ExternalID == externalID {
			return user, nil
		}
	}
	return domain.User{}, errs.ErrUserNotFound
}

func (r *fakeUserRepo) DeleteUserByExternalID(ctx context.Context, externalID string) error {
	for i, user := range r.store.users {
		if user.ExternalID == externalID {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return errs.ErrUserNotFound
}

func (r *fakeUserRepo) GetUsers(ctx context.Context, param pkgdto.Filter) ([]domain.User, error) {
	return append([]domain.User{}, r.store.users...), nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.store.users)), nil
}

func (r *fakeUserRepo) SetUserAddresses(ctx context.Context, id primitive.ObjectID, addresses []domain.Address) error {
	for i, user := range r.store.users {
		if user.ID == id {
			user.Addresses = addresses
			r.store.users[i] = user
			return nil
		}
	}
	return errs.ErrUserNotFound
}

func (r *fakeUserRepo) SetUserWishlist(ctx context.Context, id primitive.ObjectID, wishlist []primitive.ObjectID) error {
	for i, user := range r.store.users {
		if user.ID == id {
			user.Wishlist = wishlist
			r.store.users[i] = user
			return nil
		}
	}
	return errs.ErrUserNotFound
}

type fakeProducer struct {
	messages [][]byte
	keys     []string
}

func (p *fakeProducer) WriteMessage(msg []byte, key string) error {
	p.messages = append(p.messages, msg)
	p.keys = append(p.keys, key)
	return nil
}

type fakeMediaStore struct {
	uploads   int
	destroyed []string
	uploadErr error
}

func (m *fakeMediaStore) Upload(ctx context.Context, file io.Reader) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.uploads++
	return fmt.Sprintf("https://media.test/products/img-%d.png", m.uploads), nil
}

func (m *fakeMediaStore) Destroy(ctx context.Context, url string) error {
	m.destroyed = append(m.destroyed, url)
	return nil
}

func testUser() domain.User {
	return domain.User{
		ID:         primitive.NewObjectID(),
		ExternalID: "ext-user-1",
		Email:      "customer@example.com",
		Name:       "Test Customer",
	}
}
