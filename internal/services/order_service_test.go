package services_test

import (
	"testing"

	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
	"vinylstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Checkout(order *models.Order, cartID int) error {
	args := m.Called(order, cartID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUser(userID int) ([]models.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id int) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func cartWithTwoLines() *models.Cart {
	return &models.Cart{
		ID:     10,
		UserID: 7,
		Details: []models.CartDetail{
			{CartID: 10, RecordID: 1, Quantity: 2, Price: 29.99},
			{CartID: 10, RecordID: 2, Quantity: 1, Price: 19.99},
		},
	}
}

func TestOrderService_Checkout(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	service := services.NewOrderService(mockOrderRepo, mockCartRepo, nil)

	mockCartRepo.On("GetOrCreateByUser", 7).Return(cartWithTwoLines(), nil).Once()
	mockOrderRepo.On("Checkout", mock.MatchedBy(func(o *models.Order) bool {
		return o.UserID == 7 &&
			o.Status == models.OrderStatusPending &&
			o.Reference != "" &&
			len(o.Details) == 2
	}), 10).Return(nil).Once()

	order, err := service.Checkout(7)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Reference, 36)
	assert.InDelta(t, 79.97, order.TotalAmount, 0.001)
	assert.Len(t, order.Details, 2)
	mockOrderRepo.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	service := services.NewOrderService(mockOrderRepo, mockCartRepo, nil)

	mockCartRepo.On("GetOrCreateByUser", 7).Return(&models.Cart{ID: 10, UserID: 7}, nil).Once()

	order, err := service.Checkout(7)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	mockOrderRepo.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
	mockCartRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	service := services.NewOrderService(mockOrderRepo, mockCartRepo, nil)

	mockCartRepo.On("GetOrCreateByUser", 7).Return(cartWithTwoLines(), nil).Once()
	mockOrderRepo.On("Checkout", mock.AnythingOfType("*models.Order"), 10).
		Return(repositories.ErrInsufficientStock).Once()

	order, err := service.Checkout(7)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, services.ErrStockExceeded)
	mockOrderRepo.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	service := services.NewOrderService(mockOrderRepo, mockCartRepo, nil)

	stored := &models.Order{ID: 1, Reference: "ref", UserID: 7, Status: models.OrderStatusPending}

	// The owner sees the order.
	mockOrderRepo.On("GetByID", 1).Return(stored, nil).Once()
	order, err := service.GetOrder(7, 1)
	assert.NoError(t, err)
	assert.NotNil(t, order)

	// Another user does not.
	mockOrderRepo.On("GetByID", 1).Return(stored, nil).Once()
	order, err = service.GetOrder(8, 1)
	assert.NoError(t, err)
	assert.Nil(t, order)

	// Missing orders are absent results, not errors.
	mockOrderRepo.On("GetByID", 99).Return(nil, nil).Once()
	order, err = service.GetOrder(7, 99)
	assert.NoError(t, err)
	assert.Nil(t, order)

	mockOrderRepo.AssertExpectations(t)
}
