package llm

import "context"

// FinancialContext is the owner's data snapshot injected into the prompt so
// the assistant answers from real numbers instead of hallucinating.
type FinancialContext struct {
	Balance            float64
	TotalIncome        float64
	TotalExpense       float64
	RecentTransactions []string // "Title (amount)" lines, newest first
	ActiveBudgets      []string // budgeted category names
	SimilarHistory     []string // semantically similar past transactions, may be empty
}

// Provider defines the chat model behavior the service layer depends on.
type Provider interface {
	Advise(ctx context.Context, fc FinancialContext, message string) (string, error)
}
