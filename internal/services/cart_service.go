package services

import (
	"fmt"

	"vinylstore/internal/dto"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
)

// CartService handles business logic related to user carts.
type CartService struct {
	cartRepo   repositories.CartRepository
	recordRepo repositories.RecordRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, recordRepo repositories.RecordRepository) *CartService {
	return &CartService{
		cartRepo:   cartRepo,
		recordRepo: recordRepo,
	}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *CartService) GetCart(userID int) (*dto.CartDTO, error) {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	d := dto.NewCartDTO(cart)
	return &d, nil
}

// AddItem adds a record to the user's cart, capturing the record's
// current price. Adding a record already in the cart increases the line
// quantity instead of creating a second line.
func (s *CartService) AddItem(userID int, in dto.CartItemInsertDTO) (*dto.CartDTO, error) {
	record, err := s.recordRepo.GetByID(in.RecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("record with ID %d: %w", in.RecordID, ErrNotFound)
	}
	if record.Discontinued {
		return nil, fmt.Errorf("record with ID %d: %w", in.RecordID, ErrRecordDiscontinued)
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	var existing *models.CartDetail
	for i := range cart.Details {
		if cart.Details[i].RecordID == in.RecordID {
			existing = &cart.Details[i]
			break
		}
	}

	if existing != nil {
		existing.Quantity += in.Quantity
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
	} else {
		detail := models.CartDetail{
			CartID:   cart.ID,
			RecordID: in.RecordID,
			Quantity: in.Quantity,
			Price:    record.Price,
		}
		if err := s.cartRepo.CreateItem(&detail); err != nil {
			return nil, err
		}
	}

	return s.GetCart(userID)
}

// RemoveItem removes a record line from the user's cart.
func (s *CartService) RemoveItem(userID, recordID int) (*dto.CartDTO, error) {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.cartRepo.RemoveItem(cart.ID, recordID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, fmt.Errorf("record with ID %d is not in the cart: %w", recordID, ErrNotFound)
	}

	return s.GetCart(userID)
}
