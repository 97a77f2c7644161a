package entities

import (
	"time"
)

// Message is a single entry in an agent's conversation history. Both
// endpoints of a recorded message receive the same entry with the same
// creation instant.
type Message struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Agent is the domain payload carried by a chart node: an
// organizational role or an autonomous entity with prompts, tools and
// secrets. Tools and secrets are ordered; duplicates are allowed and
// order is display order.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company"`
	Position     string    `json:"position,omitempty"`
	Instructions string    `json:"instructions"`
	Tools        []string  `json:"tools"`
	Secrets      []string  `json:"secrets"`
	Avatar       string    `json:"avatar,omitempty"`
	LLMURL       string    `json:"llmUrl,omitempty"`
	SystemPrompt string    `json:"systemPrompt,omitempty"`
	UserPrompt   string    `json:"userPrompt,omitempty"`
	History      []Message `json:"history"`
}

// AgentUpdate carries a partial set of agent fields. Nil pointers mean
// "leave unchanged". History is only replaced when explicitly provided;
// a merge must never silently drop accumulated conversation history.
type AgentUpdate struct {
	Name         *string    `json:"name,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Position     *string    `json:"position,omitempty"`
	Instructions *string    `json:"instructions,omitempty"`
	Tools        *[]string  `json:"tools,omitempty"`
	Secrets      *[]string  `json:"secrets,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	LLMURL       *string    `json:"llmUrl,omitempty"`
	SystemPrompt *string    `json:"systemPrompt,omitempty"`
	UserPrompt   *string    `json:"userPrompt,omitempty"`
	History      *[]Message `json:"history,omitempty"`
}

// Normalize ensures the invariant that History is present as an empty
// sequence by the time any read occurs, never nil to consumers.
func (a *Agent) Normalize() {
	if a.History == nil {
		a.History = []Message{}
	}
	if a.Tools == nil {
		a.Tools = []string{}
	}
	if a.Secrets == nil {
		a.Secrets = []string{}
	}
}

// Clone returns a deep copy. Every mutation replaces nested slices
// rather than writing through shared backing arrays, so snapshots handed
// to the rendering layer stay stable.
func (a Agent) Clone() Agent {
	clone := a
	clone.Tools = append([]string(nil), a.Tools...)
	clone.Secrets = append([]string(nil), a.Secrets...)
	clone.History = append([]Message{}, a.History...)
	if clone.Tools == nil {
		clone.Tools = []string{}
	}
	if clone.Secrets == nil {
		clone.Secrets = []string{}
	}
	return clone
}

// Apply merges the update into a copy of the agent and returns it. The
// identity is immutable: updates cannot change the id.
func (a Agent) Apply(update AgentUpdate) Agent {
	merged := a.Clone()
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Company != nil {
		merged.Company = *update.Company
	}
	if update.Position != nil {
		merged.Position = *update.Position
	}
	if update.Instructions != nil {
		merged.Instructions = *update.Instructions
	}
	if update.Tools != nil {
		merged.Tools = append([]string{}, (*update.Tools)...)
	}
	if update.Secrets != nil {
		merged.Secrets = append([]string{}, (*update.Secrets)...)
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}
	if update.LLMURL != nil {
		merged.LLMURL = *update.LLMURL
	}
	if update.SystemPrompt != nil {
		merged.SystemPrompt = *update.SystemPrompt
	}
	if update.UserPrompt != nil {
		merged.UserPrompt = *update.UserPrompt
	}
	if update.History != nil {
		merged.History = append([]Message{}, (*update.History)...)
	}
	return merged
}

// AppendHistory returns a copy of the agent with the message appended.
// History is append-only from the agent's point of view; prior entries
// are never altered or removed.
func (a Agent) AppendHistory(msg Message) Agent {
	appended := a.Clone()
	appended.History = append(appended.History, msg)
	return appended
}
