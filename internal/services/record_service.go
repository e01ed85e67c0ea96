package services

import (
	"fmt"
	"log"

	"vinylstore/internal/dto"
	"vinylstore/internal/repositories"
	"vinylstore/pkg/rabbitmq"
)

// stockWriteAttempts bounds the read-check-write loop in AdjustStock.
// The conditional write fails when another adjustment lands between the
// read and the write; one re-read is enough for the common case.
const stockWriteAttempts = 2

// RecordService handles business logic related to records.
type RecordService struct {
	repo     repositories.RecordRepository
	mqClient *rabbitmq.Client
}

// NewRecordService creates a new RecordService. The RabbitMQ client may
// be nil; event publication is skipped in that case.
func NewRecordService(repo repositories.RecordRepository, mqClient *rabbitmq.Client) *RecordService {
	return &RecordService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAll retrieves all records.
func (s *RecordService) GetAll() ([]dto.RecordDTO, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return dto.NewRecordDTOs(records), nil
}

// GetByID retrieves a single record, or nil when the id does not exist.
func (s *RecordService) GetByID(id int) (*dto.RecordDTO, error) {
	record, err := s.repo.GetByID(id)
	if err != nil || record == nil {
		return nil, err
	}
	d := dto.NewRecordDTO(record)
	return &d, nil
}

// GetSortedByTitle retrieves all records ordered by title.
func (s *RecordService) GetSortedByTitle(ascending bool) ([]dto.RecordDTO, error) {
	records, err := s.repo.GetSortedByTitle(ascending)
	if err != nil {
		return nil, err
	}
	return dto.NewRecordDTOs(records), nil
}

// SearchByTitle retrieves records whose title contains the given text.
func (s *RecordService) SearchByTitle(text string) ([]dto.RecordDTO, error) {
	records, err := s.repo.SearchByTitle(text)
	if err != nil {
		return nil, err
	}
	return dto.NewRecordDTOs(records), nil
}

// GetByPriceRange retrieves records priced within [min, max].
func (s *RecordService) GetByPriceRange(min, max float64) ([]dto.RecordDTO, error) {
	records, err := s.repo.GetByPriceRange(min, max)
	if err != nil {
		return nil, err
	}
	return dto.NewRecordDTOs(records), nil
}

// Create persists a new record after checking that the referenced group
// exists, and returns its transfer shape.
func (s *RecordService) Create(in dto.RecordInsertDTO) (*dto.RecordDTO, error) {
	exists, err := s.repo.GroupExists(in.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("group with ID %d: %w", in.GroupID, ErrGroupNotFound)
	}

	record := in.ToModel()
	if err := s.repo.Create(&record); err != nil {
		return nil, err
	}

	d := dto.NewRecordDTO(&record)
	return &d, nil
}

// Update overwrites the record's fields from the payload. The stored
// image is kept when the incoming URL is empty. Returns nil when the id
// does not exist.
func (s *RecordService) Update(id int, in dto.RecordUpdateDTO) (*dto.RecordDTO, error) {
	record, err := s.repo.GetByID(id)
	if err != nil || record == nil {
		return nil, err
	}

	in.Apply(record)
	if err := s.repo.Update(record); err != nil {
		return nil, err
	}

	d := dto.NewRecordDTO(record)
	return &d, nil
}

// AdjustStock applies a positive or negative delta to the record's
// stock. The resulting stock can never go negative: a decrease larger
// than the available stock fails with ErrStockExceeded and leaves the
// record unmodified. The write is conditional on the stock value read,
// so concurrent adjustments cannot interleave unsafely.
func (s *RecordService) AdjustStock(id, amount int) (*dto.StockAdjustmentDTO, error) {
	for attempt := 0; attempt < stockWriteAttempts; attempt++ {
		record, err := s.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, fmt.Errorf("record with ID %d: %w", id, ErrNotFound)
		}

		if amount < 0 && -amount > record.Stock {
			return nil, fmt.Errorf("%w (requested %d, available %d)", ErrStockExceeded, -amount, record.Stock)
		}

		ok, err := s.repo.UpdateStock(id, record.Stock, record.Stock+amount)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Lost the race against another adjustment; re-read and retry.
			continue
		}

		s.publishEvent("record.stock.adjusted", map[string]interface{}{
			"recordId":      record.ID,
			"title":         record.Title,
			"amount":        amount,
			"previousStock": record.Stock,
			"newStock":      record.Stock + amount,
		})

		return &dto.StockAdjustmentDTO{
			ID:            record.ID,
			Title:         record.Title,
			PreviousStock: record.Stock,
			NewStock:      record.Stock + amount,
		}, nil
	}
	return nil, fmt.Errorf("record with ID %d: %w", id, ErrStockConflict)
}

// Delete removes a record and returns its last transfer shape, or nil
// when the id does not exist. The Imgur image is left alone; removing
// it would need the Imgur API.
func (s *RecordService) Delete(id int) (*dto.RecordDTO, error) {
	record, err := s.repo.GetByID(id)
	if err != nil || record == nil {
		return nil, err
	}

	d := dto.NewRecordDTO(record)
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RecordService) publishEvent(eventType string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
