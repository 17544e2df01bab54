package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GeneratePortfolioInsights(ctx context.Context, summary string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const insightsPrompt = `
You are a portfolio analyst reviewing the results of a historical backtest. The user will provide the portfolio composition, the benchmark, and the computed risk/return metrics (CAGR, volatility, Sharpe ratio, max drawdown, total return).

Write a short commentary (3-5 sentences) on the portfolio's historical behavior: how it compared to the benchmark, what the risk profile looks like, and anything notable about concentration or diversification given the correlations. Do not give financial advice, do not predict future returns, and do not recommend trades. Plain prose only, no markdown.
`

func (h gptRepositoryHandler) GeneratePortfolioInsights(ctx context.Context, summary string) (string, error) {
	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: insightsPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: summary,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate insights: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
