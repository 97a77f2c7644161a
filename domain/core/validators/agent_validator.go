package validators

import (
	"fmt"
	"net/url"
	"strings"

	"orgchart-backend/domain/config"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/pkg/errors"
)

// AgentValidator validates agent-related domain rules
type AgentValidator struct {
	nameMinLength     int
	nameMaxLength     int
	instructionsMax   int
	maxTools          int
	maxSecrets        int
	forbiddenPatterns []string
}

// NewAgentValidator creates a validator from the domain configuration
func NewAgentValidator(cfg *config.DomainConfig) *AgentValidator {
	return &AgentValidator{
		nameMinLength:   1,
		nameMaxLength:   cfg.MaxNameLength,
		instructionsMax: cfg.MaxInstructionsLength,
		maxTools:        cfg.MaxToolsPerAgent,
		maxSecrets:      cfg.MaxSecretsPerAgent,
		// Instructions end up inside prompts; reject the obvious
		// injection carriers.
		forbiddenPatterns: []string{"<script>", "javascript:"},
	}
}

// ValidateAgent checks a full agent definition
func (v *AgentValidator) ValidateAgent(agent entities.Agent) error {
	var problems []string

	if err := v.validateName(agent.Name); err != nil {
		problems = append(problems, err.Error())
	}
	if err := v.validateInstructions(agent.Instructions); err != nil {
		problems = append(problems, err.Error())
	}
	if err := v.ValidateLLMURL(agent.LLMURL); err != nil {
		problems = append(problems, err.Error())
	}
	if len(agent.Tools) > v.maxTools {
		problems = append(problems, fmt.Sprintf("cannot have more than %d tools", v.maxTools))
	}
	if len(agent.Secrets) > v.maxSecrets {
		problems = append(problems, fmt.Sprintf("cannot have more than %d secrets", v.maxSecrets))
	}

	if len(problems) > 0 {
		return errors.NewValidationError(strings.Join(problems, "; ")).
			WithCode("INVALID_AGENT")
	}
	return nil
}

// ValidateUpdate checks only the fields an update actually carries
func (v *AgentValidator) ValidateUpdate(update entities.AgentUpdate) error {
	var problems []string

	if update.Name != nil {
		if err := v.validateName(*update.Name); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if update.Instructions != nil {
		if err := v.validateInstructions(*update.Instructions); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if update.LLMURL != nil {
		if err := v.ValidateLLMURL(*update.LLMURL); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if update.Tools != nil && len(*update.Tools) > v.maxTools {
		problems = append(problems, fmt.Sprintf("cannot have more than %d tools", v.maxTools))
	}
	if update.Secrets != nil && len(*update.Secrets) > v.maxSecrets {
		problems = append(problems, fmt.Sprintf("cannot have more than %d secrets", v.maxSecrets))
	}

	if len(problems) > 0 {
		return errors.NewValidationError(strings.Join(problems, "; ")).
			WithCode("INVALID_AGENT_UPDATE")
	}
	return nil
}

func (v *AgentValidator) validateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < v.nameMinLength {
		return fmt.Errorf("name is required")
	}
	if len(name) > v.nameMaxLength {
		return fmt.Errorf("name exceeds %d characters", v.nameMaxLength)
	}
	return nil
}

func (v *AgentValidator) validateInstructions(instructions string) error {
	if len(instructions) > v.instructionsMax {
		return fmt.Errorf("instructions exceed %d characters", v.instructionsMax)
	}
	for _, pattern := range v.forbiddenPatterns {
		if strings.Contains(strings.ToLower(instructions), pattern) {
			return fmt.Errorf("instructions contain disallowed content")
		}
	}
	return nil
}

// ValidateLLMURL checks the remote delivery endpoint. An empty URL is
// legal; it marks a backend-managed agent.
func (v *AgentValidator) ValidateLLMURL(urlStr string) error {
	if urlStr == "" {
		return nil
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid llmUrl format")
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("llmUrl must use http or https scheme")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("llmUrl must have a valid host")
	}
	return nil
}
