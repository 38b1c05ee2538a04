package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopease/shopease/apperrors"
	"github.com/shopease/shopease/models"
	"github.com/shopease/shopease/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateOrderRequest is the order-creation payload. Clients may send a price
// per item and a totalPrice for display purposes; both are ignored here — the
// order is always priced from the catalog.
type CreateOrderRequest struct {
	Items      []CreateOrderItem `json:"items"`
	TotalPrice float64           `json:"totalPrice"`
}

type CreateOrderItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateOrder validates the request, reprices every line from the current
// catalog and persists the order as a single insert owned by userID.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, req *CreateOrderRequest) (*models.Order, *apperrors.Error) {
	if len(req.Items) == 0 {
		return nil, apperrors.BadRequest("No items in the order")
	}

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	productIDs := make([]primitive.ObjectID, 0, len(req.Items))
	seen := make(map[primitive.ObjectID]bool, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, apperrors.BadRequest("Item quantity must be at least 1")
		}
		id, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			return nil, apperrors.BadRequest(fmt.Sprintf("Invalid product ID: %s", item.Product))
		}
		if !seen[id] {
			seen[id] = true
			productIDs = append(productIDs, id)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		zap.L().Error("Failed to load products for order", zap.Error(err))
		return nil, apperrors.Internal("Failed to create order", err)
	}

	// Snapshot name and price per line so the order remains a faithful
	// receipt; client-supplied prices are never persisted.
	items := make([]models.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		id, _ := primitive.ObjectIDFromHex(item.Product)
		product, ok := products[id]
		if !ok {
			return nil, apperrors.BadRequest(fmt.Sprintf("Product not found: %s", item.Product))
		}
		items = append(items, models.OrderItem{
			Product:  product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		User:       owner,
		Items:      items,
		TotalPrice: total,
		IsPaid:     false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("Failed to persist order", zap.Error(err), zap.String("user", userID))
		return nil, apperrors.Internal("Failed to create order", err)
	}

	zap.L().Info("Order created",
		zap.String("order", order.ID.Hex()),
		zap.String("user", userID),
		zap.Float64("total", order.TotalPrice),
	)
	return order, nil
}

// MyOrders returns all orders owned by userID, newest first. A caller with no
// orders gets an empty slice, not an error.
func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]models.Order, *apperrors.Error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	orders, err := s.orderRepo.FindByUser(ctx, owner)
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err), zap.String("user", userID))
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	return orders, nil
}
