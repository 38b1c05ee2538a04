package services

import (
	"context"
	"errors"

	"github.com/shopease/shopease/apperrors"
	"github.com/shopease/shopease/models"
	"github.com/shopease/shopease/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) List(ctx context.Context, search, category string) ([]models.Product, *apperrors.Error) {
	products, err := s.productRepo.Find(ctx, search, category)
	if err != nil {
		zap.L().Error("Failed to fetch products", zap.Error(err))
		return nil, apperrors.Internal("Failed to fetch products", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, *apperrors.Error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid product ID")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Product not found")
		}
		zap.L().Error("Failed to fetch product", zap.Error(err), zap.String("id", id))
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input *ProductInput) (*models.Product, *apperrors.Error) {
	if appErr := validateProductInput(input); appErr != nil {
		return nil, appErr
	}

	product := &models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Image:    input.Image,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		return nil, apperrors.Internal("Failed to create product", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input *ProductInput) *apperrors.Error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.BadRequest("Invalid product ID")
	}
	if appErr := validateProductInput(input); appErr != nil {
		return appErr
	}

	updates := bson.M{
		"name":     input.Name,
		"price":    input.Price,
		"category": input.Category,
		"image":    input.Image,
	}
	res, err := s.productRepo.Update(ctx, productID, updates)
	if err != nil {
		zap.L().Error("Failed to update product", zap.Error(err), zap.String("id", id))
		return apperrors.Internal("Failed to update product", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) *apperrors.Error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.BadRequest("Invalid product ID")
	}

	res, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		zap.L().Error("Failed to delete product", zap.Error(err), zap.String("id", id))
		return apperrors.Internal("Failed to delete product", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

func validateProductInput(input *ProductInput) *apperrors.Error {
	if input.Name == "" {
		return apperrors.BadRequest("Product name is required")
	}
	if input.Price <= 0 {
		return apperrors.BadRequest("Product price must be greater than zero")
	}
	return nil
}
