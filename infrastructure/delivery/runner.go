package delivery

import (
	"context"
	"fmt"

	"orgchart-backend/domain/core/aggregates"
	pkgerrors "orgchart-backend/pkg/errors"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// AgentRunner executes backend-managed agents against an
// OpenAI-compatible chat completion endpoint. The target agent's
// instructions and system prompt shape the completion; agents without
// any prompt configuration still get a generic persona from their
// display fields.
type AgentRunner struct {
	client *openai.Client
	chart  *aggregates.Chart
	model  string
	logger *zap.Logger
}

// NewAgentRunner creates a runner. baseURL may be empty to use the
// default OpenAI endpoint; any OpenAI-compatible server works.
func NewAgentRunner(apiKey, baseURL, model string, chart *aggregates.Chart, logger *zap.Logger) *AgentRunner {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &AgentRunner{
		client: openai.NewClientWithConfig(clientConfig),
		chart:  chart,
		model:  model,
		logger: logger,
	}
}

// Run delivers a message to a backend-managed agent and returns its
// reply. An unknown target agent yields a "not found" reply rather
// than an error; the sender's message was still accepted.
func (r *AgentRunner) Run(ctx context.Context, fromID, toID, message string) (string, error) {
	target, ok := r.chart.Node(toID)
	if !ok {
		return fmt.Sprintf("Agent not found: %s", toID), nil
	}

	agent := target.Agent
	systemPrompt := agent.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = fmt.Sprintf("You are %s, %s at %s. %s",
			agent.Name, agent.Position, agent.Company, agent.Instructions)
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", pkgerrors.NewExternalError("agent runner", err)
	}
	if len(resp.Choices) == 0 {
		return "", pkgerrors.NewExternalError("agent runner", fmt.Errorf("empty completion for agent %s", toID))
	}

	r.logger.Debug("Backend agent replied",
		zap.String("fromID", fromID),
		zap.String("toID", toID),
		zap.String("model", r.model),
	)

	return resp.Choices[0].Message.Content, nil
}
