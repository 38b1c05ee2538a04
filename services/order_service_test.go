package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopease/shopease/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Mocks ---

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[primitive.ObjectID]models.Product), args.Error(1)
}

func (m *MockProductRepository) Find(ctx context.Context, search, category string) ([]models.Product, error) {
	args := m.Called(ctx, search, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

// --- Tests ---

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	catalog := map[primitive.ObjectID]models.Product{
		p1: {ID: p1, Name: "Shirt", Price: 100},
		p2: {ID: p2, Name: "Mug", Price: 50},
	}

	t.Run("prices the order from the catalog", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		productRepo.On("FindByIDs", ctx, mock.Anything).Return(catalog, nil).Once()
		orderRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		req := &CreateOrderRequest{
			Items: []CreateOrderItem{
				// client-supplied prices are lies and must be ignored
				{Product: p1.Hex(), Quantity: 2, Price: 1},
				{Product: p2.Hex(), Quantity: 1, Price: 1},
			},
			TotalPrice: 3,
		}

		order, appErr := svc.CreateOrder(ctx, owner.Hex(), req)
		require.Nil(t, appErr)

		assert.Equal(t, owner, order.User)
		assert.Equal(t, 250.0, order.TotalPrice)
		assert.False(t, order.IsPaid)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "Shirt", order.Items[0].Name)
		assert.Equal(t, 100.0, order.Items[0].Price)
		assert.Equal(t, 2, order.Items[0].Quantity)
		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		_, appErr := svc.CreateOrder(ctx, owner.Hex(), &CreateOrderRequest{})
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "No items in the order", appErr.Message)
		orderRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		for _, q := range []int{0, -1} {
			req := &CreateOrderRequest{Items: []CreateOrderItem{{Product: p1.Hex(), Quantity: q}}}
			_, appErr := svc.CreateOrder(ctx, owner.Hex(), req)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		}
		orderRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects unknown products", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		productRepo.On("FindByIDs", ctx, mock.Anything).Return(map[primitive.ObjectID]models.Product{}, nil).Once()

		req := &CreateOrderRequest{Items: []CreateOrderItem{{Product: primitive.NewObjectID().Hex(), Quantity: 1}}}
		_, appErr := svc.CreateOrder(ctx, owner.Hex(), req)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		orderRepo.AssertNotCalled(t, "Create")
	})

	t.Run("surfaces persistence faults as internal errors", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		productRepo.On("FindByIDs", ctx, mock.Anything).Return(catalog, nil).Once()
		orderRepo.On("Create", ctx, mock.Anything).Return(errors.New("write failed")).Once()

		req := &CreateOrderRequest{Items: []CreateOrderItem{{Product: p1.Hex(), Quantity: 1}}}
		_, appErr := svc.CreateOrder(ctx, owner.Hex(), req)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}

func TestMyOrders(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("returns only the caller's orders", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := NewOrderService(orderRepo, new(MockProductRepository))

		mine := []models.Order{{ID: primitive.NewObjectID(), User: owner, TotalPrice: 250}}
		orderRepo.On("FindByUser", ctx, owner).Return(mine, nil).Once()

		orders, appErr := svc.MyOrders(ctx, owner.Hex())
		require.Nil(t, appErr)
		require.Len(t, orders, 1)
		assert.Equal(t, owner, orders[0].User)
	})

	t.Run("no orders is an empty slice, not an error", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := NewOrderService(orderRepo, new(MockProductRepository))

		orderRepo.On("FindByUser", ctx, owner).Return([]models.Order{}, nil).Once()

		orders, appErr := svc.MyOrders(ctx, owner.Hex())
		require.Nil(t, appErr)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}
