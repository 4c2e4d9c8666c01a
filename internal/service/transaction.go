package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/infrastructure/embedding"
	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
	"gorm.io/gorm"
)

// TransactionInput carries a validated create request.
type TransactionInput struct {
	Title    string
	Amount   float64
	Type     model.TransactionType
	Category string
	Priority model.Priority
	Date     time.Time
}

// TransactionPatch is a partial update: nil fields are left untouched. This
// replaces "absent JSON keys are ignored" dynamic behavior with an explicit
// present-or-absent marker per field.
type TransactionPatch struct {
	Title    *string
	Amount   *float64
	Type     *model.TransactionType
	Category *string
	Priority *model.Priority
	Date     *time.Time
}

type TransactionService struct {
	repo       repository.TransactionRepo
	embedder   embedding.Provider
	memoryRepo repository.MemoryRepo
}

// NewTransactionService wires the ledger repo plus the optional semantic
// memory pair. Passing nil for embedder/memory disables memory writes.
func NewTransactionService(repo repository.TransactionRepo, embedder embedding.Provider, memory repository.MemoryRepo) *TransactionService {
	return &TransactionService{
		repo:       repo,
		embedder:   embedder,
		memoryRepo: memory,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID string, input TransactionInput) (*model.Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	priority := input.Priority
	if input.Type == model.TypeIncome || priority == "" {
		// Priority only means something for expenses.
		priority = model.PriorityNeed
	}

	tx := &model.Transaction{
		Title:    input.Title,
		Amount:   input.Amount,
		Type:     input.Type,
		Category: input.Category,
		Priority: priority,
		Date:     date,
		UserID:   userID,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.rememberAsync(userID, tx)
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, int64, error) {
	return s.repo.List(ctx, filter)
}

// Update applies a patch to an owned transaction. A miss on either the ID or
// the ownership check reports ErrNotFound.
func (s *TransactionService) Update(ctx context.Context, userID string, id uint, patch TransactionPatch) (*model.Transaction, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotFound
	}

	if err := applyTransactionPatch(existing, patch); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.rememberAsync(userID, existing)
	return existing, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID string, id uint) error {
	affected, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if s.memoryRepo != nil {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.memoryRepo.Delete(bgCtx, id); err != nil {
				slog.Error("failed to delete transaction memory", "id", id, "error", err)
			}
		}()
	}
	return nil
}

// rememberAsync embeds the transaction and upserts it into the vector memory
// off the request path. Memory is best-effort: failures are logged, never
// surfaced, and the write must not hold the response hostage.
func (s *TransactionService) rememberAsync(userID string, tx *model.Transaction) {
	if s.embedder == nil || s.memoryRepo == nil {
		return
	}

	id := tx.ID
	content := fmt.Sprintf("%s [%s] %.0f", tx.Title, tx.Category, tx.Amount)
	category := tx.Category

	go func() {
		// The request context may be cancelled once the response is sent.
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		vector, err := s.embedder.GetVector(bgCtx, content)
		if err != nil {
			slog.Error("failed to embed transaction", "id", id, "error", err)
			return
		}
		if err := s.memoryRepo.SaveMemory(bgCtx, userID, id, content, category, vector); err != nil {
			slog.Error("failed to save transaction memory", "id", id, "error", err)
		}
	}()
}

func validateTransactionInput(input TransactionInput) error {
	if input.Title == "" {
		return fmt.Errorf("title is required")
	}
	if input.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if !input.Type.Valid() {
		return fmt.Errorf("type must be INCOME or EXPENSE")
	}
	if !model.ValidCategory(input.Type, input.Category) {
		return fmt.Errorf("unknown category %q for type %s", input.Category, input.Type)
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return fmt.Errorf("priority must be NEED or WANT")
	}
	return nil
}

func applyTransactionPatch(tx *model.Transaction, patch TransactionPatch) error {
	if patch.Title != nil {
		if *patch.Title == "" {
			return fmt.Errorf("title cannot be empty")
		}
		tx.Title = *patch.Title
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return fmt.Errorf("amount must be greater than zero")
		}
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return fmt.Errorf("type must be INCOME or EXPENSE")
		}
		tx.Type = *patch.Type
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return fmt.Errorf("priority must be NEED or WANT")
		}
		tx.Priority = *patch.Priority
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	// Category is validated against the (possibly patched) type.
	if !model.ValidCategory(tx.Type, tx.Category) {
		return fmt.Errorf("unknown category %q for type %s", tx.Category, tx.Type)
	}
	return nil
}
