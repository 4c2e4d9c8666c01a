package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sanzzyy/management-finasial/internal/infrastructure/embedding"
	"github.com/Sanzzyy/management-finasial/internal/infrastructure/llm"
	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
)

// FallbackReply is returned whenever the model call fails. The user gets a
// readable message instead of a raw error.
const FallbackReply = "Sorry, FinBot is having trouble right now. Please try again in a moment."

const recentContextSize = 10

type ChatService struct {
	llmClient  llm.Provider
	embedder   embedding.Provider
	txRepo     repository.TransactionRepo
	budgetRepo repository.BudgetRepo
	memoryRepo repository.MemoryRepo
}

func NewChatService(llmClient llm.Provider, embedder embedding.Provider, txRepo repository.TransactionRepo, budgetRepo repository.BudgetRepo, memory repository.MemoryRepo) *ChatService {
	return &ChatService{
		llmClient:  llmClient,
		embedder:   embedder,
		txRepo:     txRepo,
		budgetRepo: budgetRepo,
		memoryRepo: memory,
	}
}

// Chat answers a question grounded in the owner's own data. Persistence
// errors while gathering context abort the call; only the model call itself
// degrades to the fallback reply.
func (s *ChatService) Chat(ctx context.Context, userID, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	transactions, err := s.txRepo.ListRecent(ctx, userID, recentContextSize)
	if err != nil {
		return "", err
	}
	budgets, err := s.budgetRepo.ListByOwner(ctx, userID)
	if err != nil {
		return "", err
	}

	fc := buildFinancialContext(transactions, budgets)
	fc.SimilarHistory = s.searchSimilar(ctx, userID, message)

	reply, err := s.llmClient.Advise(ctx, fc, message)
	if err != nil {
		slog.Error("chat model call failed", "userID", userID, "error", err)
		return FallbackReply, nil
	}
	return reply, nil
}

// searchSimilar is best-effort RAG: if the embedder or the vector store is
// unavailable or errors, chat proceeds on recent history alone.
func (s *ChatService) searchSimilar(ctx context.Context, userID, message string) []string {
	if s.embedder == nil || s.memoryRepo == nil {
		return nil
	}

	vector, err := s.embedder.GetVector(ctx, message)
	if err != nil {
		slog.Warn("embedding for chat query failed", "error", err)
		return nil
	}
	results, err := s.memoryRepo.SearchSimilar(ctx, userID, 3, vector)
	if err != nil {
		slog.Warn("memory search failed", "error", err)
		return nil
	}

	similar := make([]string, 0, len(results))
	for _, r := range results {
		similar = append(similar, r.Content)
	}
	return similar
}

func buildFinancialContext(transactions []model.Transaction, budgets []model.Budget) llm.FinancialContext {
	var fc llm.FinancialContext
	for _, t := range transactions {
		if t.Type == model.TypeIncome {
			fc.TotalIncome += t.Amount
		} else {
			fc.TotalExpense += t.Amount
		}
		fc.RecentTransactions = append(fc.RecentTransactions,
			fmt.Sprintf("%s (%.0f)", t.Title, t.Amount))
	}
	fc.Balance = fc.TotalIncome - fc.TotalExpense

	for _, b := range budgets {
		fc.ActiveBudgets = append(fc.ActiveBudgets, b.Category)
	}
	return fc
}
