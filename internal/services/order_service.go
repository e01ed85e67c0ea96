package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"vinylstore/internal/dto"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
	"vinylstore/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. The RabbitMQ client may
// be nil; event publication is skipped in that case.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		mqClient:  mqClient,
	}
}

// Checkout turns the user's cart into an order. Every line's stock is
// decremented through the guarded path inside one transaction: if any
// line exceeds the available stock nothing is persisted and the cart is
// left intact.
func (s *OrderService) Checkout(userID int) (*dto.OrderDTO, error) {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Details) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		Reference: uuid.New().String(),
		UserID:    userID,
		Status:    models.OrderStatusPending,
	}
	for _, line := range cart.Details {
		order.Details = append(order.Details, models.OrderDetail{
			RecordID: line.RecordID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
		order.TotalAmount += line.Price * float64(line.Quantity)
	}

	if err := s.orderRepo.Checkout(&order, cart.ID); err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, fmt.Errorf("%v: %w", err, ErrStockExceeded)
		}
		return nil, err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderId":   order.ID,
			"reference": order.Reference,
			"userId":    order.UserID,
			"status":    order.Status,
			"total":     order.TotalAmount,
		}
		if err := s.mqClient.PublishEvent("order.created", event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.Reference, err)
		}
	}

	d := dto.NewOrderDTO(&order)
	return &d, nil
}

// GetOrders retrieves the user's orders, newest first.
func (s *OrderService) GetOrders(userID int) ([]dto.OrderDTO, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTOs(orders), nil
}

// GetOrder retrieves one of the user's orders, or nil when the id does
// not exist or belongs to another user.
func (s *OrderService) GetOrder(userID, id int) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, nil
	}
	d := dto.NewOrderDTO(order)
	return &d, nil
}
