package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopright/backend/config"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdminServiceFixture() (AdminService, *memStore, *fakeMediaStore, *fakeProducer) {
	store := newMemStore()
	mediaStore := &fakeMediaStore{}
	producer := &fakeProducer{}
	svc := CreateAdminService(
		&fakeProductRepo{store: store},
		&fakeOrderRepo{store: store},
		&fakeUserRepo{store: store},
		mediaStore,
		producer,
		&config.Config{},
	)
	return svc, store, mediaStore, producer
}

func productRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:        "Walnut Desk",
		Description: "A desk",
		Price:       499.99,
		Stock:       12,
		Category:    "furniture",
	}
}

func imageReaders(n int) []io.Reader {
	images := make([]io.Reader, n)
	for i := range images {
		images[i] = strings.NewReader("image-bytes")
	}
	return images
}

func TestAddProduct(t *testing.T) {
	svc, store, mediaStore, _ := newAdminServiceFixture()

	product, err := svc.AddProduct(context.Background(), productRequest(), imageReaders(2))
	require.NoError(t, err)

	assert.False(t, product.ID.IsZero())
	assert.Len(t, product.Images, 2)
	assert.Equal(t, 2, mediaStore.uploads)
	assert.Len(t, store.products, 1)
}

func TestAddProductValidation(t *testing.T) {
	svc, store, _, _ := newAdminServiceFixture()

	testCases := []struct {
		name        string
		mutate      func(req *dto.ProductRequest)
		images      int
		expectedErr error
	}{
		{name: "missing name", mutate: func(req *dto.ProductRequest) { req.Name = "" }, images: 1, expectedErr: errs.ErrClient},
		{name: "zero price", mutate: func(req *dto.ProductRequest) { req.Price = 0 }, images: 1, expectedErr: errs.ErrClient},
		{name: "negative stock", mutate: func(req *dto.ProductRequest) { req.Stock = -1 }, images: 1, expectedErr: errs.ErrClient},
		{name: "no images", mutate: func(req *dto.ProductRequest) {}, images: 0, expectedErr: errs.ErrImageRequired},
		{name: "too many images", mutate: func(req *dto.ProductRequest) {}, images: 4, expectedErr: errs.ErrTooManyImages},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := productRequest()
			tc.mutate(&req)

			_, err := svc.AddProduct(context.Background(), req, imageReaders(tc.images))
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Empty(t, store.products)
		})
	}
}

func TestAddProductUploadFailure(t *testing.T) {
	svc, store, mediaStore, _ := newAdminServiceFixture()
	mediaStore.uploadErr = errors.New("media host down")

	_, err := svc.AddProduct(context.Background(), productRequest(), imageReaders(1))
	assert.Error(t, err)
	assert.Empty(t, store.products)
}

func TestUpdateProduct(t *testing.T) {
	svc, _, mediaStore, _ := newAdminServiceFixture()

	product, err := svc.AddProduct(context.Background(), productRequest(), imageReaders(2))
	require.NoError(t, err)
	oldImages := product.Images

	newPrice := 299.99
	updated, err := svc.UpdateProduct(context.Background(), product.ID.Hex(), dto.UpdateProductRequest{Price: &newPrice}, nil)
	require.NoError(t, err)

	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, product.Name, updated.Name)
	assert.Equal(t, oldImages, updated.Images)

	// replacing images destroys the old ones on the media host
	updated, err = svc.UpdateProduct(context.Background(), product.ID.Hex(), dto.UpdateProductRequest{}, imageReaders(1))
	require.NoError(t, err)
	assert.Len(t, updated.Images, 1)
	assert.ElementsMatch(t, oldImages, mediaStore.destroyed)
}

func TestDeleteProduct(t *testing.T) {
	svc, store, mediaStore, _ := newAdminServiceFixture()

	product, err := svc.AddProduct(context.Background(), productRequest(), imageReaders(2))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID.Hex()))

	assert.Empty(t, store.products)
	assert.ElementsMatch(t, product.Images, mediaStore.destroyed)

	err = svc.DeleteProduct(context.Background(), product.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, store, _, producer := newAdminServiceFixture()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	order := domain.Order{
		ID:          primitive.NewObjectID(),
		ExternalID:  "ext-user-1",
		OrderNumber: "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Status:      domain.OrderStatusPending,
	}
	store.orders = append(store.orders, order)

	shipped, err := svc.UpdateOrderStatus(context.Background(), order.ID.Hex(), domain.OrderStatusShipped)
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedAt)
	assert.Equal(t, fixed, *shipped.ShippedAt)
	assert.Nil(t, shipped.DeliveredAt)

	// moving to shipped again keeps the original timestamp
	timeNow = func() time.Time { return fixed.Add(time.Hour) }
	again, err := svc.UpdateOrderStatus(context.Background(), order.ID.Hex(), domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, fixed, *again.ShippedAt)

	delivered, err := svc.UpdateOrderStatus(context.Background(), order.ID.Hex(), domain.OrderStatusDelivered)
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)
	assert.Equal(t, fixed.Add(time.Hour), *delivered.DeliveredAt)
	assert.Equal(t, fixed, *delivered.ShippedAt)

	require.Len(t, producer.messages, 3)
	var event dto.KafkaMessage
	require.NoError(t, json.Unmarshal(producer.messages[2], &event))
	assert.Equal(t, "order_status_updated", event.EventType)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	svc, store, _, _ := newAdminServiceFixture()

	order := domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	store.orders = append(store.orders, order)

	_, err := svc.UpdateOrderStatus(context.Background(), order.ID.Hex(), "lost")
	assert.ErrorIs(t, err, errs.ErrInvalidOrderStatus)

	_, err = svc.UpdateOrderStatus(context.Background(), primitive.NewObjectID().Hex(), domain.OrderStatusShipped)
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestGetDashboardStats(t *testing.T) {
	svc, store, _, _ := newAdminServiceFixture()

	store.seedProduct(5)
	store.seedProduct(5)
	store.orders = append(store.orders,
		domain.Order{ID: primitive.NewObjectID(), TotalPrice: 100},
		domain.Order{ID: primitive.NewObjectID(), TotalPrice: 49.50},
	)
	store.users = append(store.users, domain.User{ID: primitive.NewObjectID(), ExternalID: "ext-user-1"})

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 149.50, stats.TotalRevenue)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalProducts)
}
