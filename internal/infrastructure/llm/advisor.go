package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/sashabaranov/go-openai"
)

// ChatClient talks to any OpenAI-compatible chat endpoint. The base URL and
// model come from config, so the same client serves OpenAI, DeepSeek, or a
// Gemini compatibility proxy.
type ChatClient struct {
	modelName string
	client    *openai.Client
}

func NewChatClient(apiKey, baseURL, modelName string) *ChatClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &ChatClient{
		modelName: modelName,
		client:    openai.NewClientWithConfig(config),
	}
}

func (c *ChatClient) Advise(ctx context.Context, fc FinancialContext, message string) (string, error) {
	sysPrompt := buildSystemPrompt(fc)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sysPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildSystemPrompt(fc FinancialContext) string {
	var b strings.Builder

	b.WriteString("You are FinBot, a friendly and sensible personal finance assistant.\n\n")
	b.WriteString("USER'S CURRENT FINANCIAL DATA:\n")
	fmt.Fprintf(&b, "- Balance: %.0f\n", fc.Balance)
	fmt.Fprintf(&b, "- Total income (recent sample): %.0f\n", fc.TotalIncome)
	fmt.Fprintf(&b, "- Total expense (recent sample): %.0f\n", fc.TotalExpense)

	if len(fc.RecentTransactions) > 0 {
		b.WriteString("- Recent transactions:\n")
		for _, t := range fc.RecentTransactions {
			fmt.Fprintf(&b, "  - %s\n", t)
		}
	}
	if len(fc.ActiveBudgets) > 0 {
		fmt.Fprintf(&b, "- Active budgets: %s\n", strings.Join(fc.ActiveBudgets, ", "))
	}
	if len(fc.SimilarHistory) > 0 {
		b.WriteString("- Past transactions similar to this question:\n")
		for _, h := range fc.SimilarHistory {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("- Answer from the data above when it is relevant.\n")
	fmt.Fprintf(&b, "- When suggesting where to cut spending, stick to the app's expense categories: %s.\n", model.CategoryPrompt())
	b.WriteString("- Give practical, short, motivating financial advice.\n")
	b.WriteString("- If the data is empty, encourage the user to start recording transactions.\n")

	return b.String()
}
