package service

import (
	"context"

	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/repository"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
}

func CreateProductService(productRepo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	return s.productRepo.GetProducts(ctx, param)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrClient
	}

	return s.productRepo.GetProductByID(ctx, productID)
}
