package seed

import (
	"fmt"

	"orgchart-backend/domain/config"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/domain/core/valueobjects"
)

// There is no persistence: the chart resets to this fixed data set on
// every process start. Five agents, five edges, and the built-in
// relationship vocabulary.

type seedEdge struct {
	source       string
	target       string
	relationship string
}

// NewChart builds the seeded chart by replaying the same operations a
// user would perform, so every edge carries a style snapshot taken from
// the catalog exactly as drawn edges do.
func NewChart(cfg *config.DomainConfig) (*aggregates.Chart, error) {
	chart := aggregates.NewChart(cfg)

	agents := []struct {
		agent    entities.Agent
		position valueobjects.Position
	}{
		{
			agent: entities.Agent{
				ID:           "1",
				Name:         "Sarah Johnson",
				Company:      "Acme Corp",
				Position:     "CEO",
				Instructions: "Oversee all company operations and strategic direction",
				Tools:        []string{"Corporate Dashboard", "Financial Analytics"},
				Secrets:      []string{"Annual Budget", "Strategic Plans 2025"},
			},
			position: valueobjects.NewPosition(250, 0),
		},
		{
			agent: entities.Agent{
				ID:           "2",
				Name:         "David Chen",
				Company:      "Acme Corp",
				Position:     "CTO",
				Instructions: "Lead technical strategy and oversee all engineering teams",
				Tools:        []string{"GitHub Admin", "AWS Console", "Jira"},
				Secrets:      []string{"System Architecture", "R&D Proposals"},
			},
			position: valueobjects.NewPosition(100, 150),
		},
		{
			agent: entities.Agent{
				ID:           "3",
				Name:         "Miguel Rodriguez",
				Company:      "Acme Corp",
				Position:     "CFO",
				Instructions: "Manage company finances and investor relations",
				Tools:        []string{"Financial Reporting Suite", "Investor Portal"},
				Secrets:      []string{"Q3 Financial Report", "Investor Meeting Notes"},
			},
			position: valueobjects.NewPosition(400, 150),
		},
		{
			agent: entities.Agent{
				ID:           "4",
				Name:         "Priya Patel",
				Company:      "Acme Corp",
				Position:     "Head of Engineering",
				Instructions: "Manage engineering team and product development",
				Tools:        []string{"GitHub", "Jira", "CircleCI"},
				Secrets:      []string{"Product Roadmap", "System Credentials"},
			},
			position: valueobjects.NewPosition(100, 300),
		},
		{
			agent: entities.Agent{
				ID:           "5",
				Name:         "James Wilson",
				Company:      "Acme Corp",
				Position:     "Head of Marketing",
				Instructions: "Develop and execute marketing strategies",
				Tools:        []string{"Analytics Dashboard", "CRM", "Social Media Suite"},
				Secrets:      []string{"Campaign KPIs", "Market Research"},
			},
			position: valueobjects.NewPosition(400, 300),
		},
	}

	for _, entry := range agents {
		if _, err := chart.AddAgentAt(entry.agent, entry.position); err != nil {
			return nil, fmt.Errorf("seeding agent %s: %w", entry.agent.ID, err)
		}
	}

	edges := []seedEdge{
		{source: "1", target: "2", relationship: "direct"},
		{source: "1", target: "3", relationship: "direct"},
		{source: "2", target: "4", relationship: "direct"},
		{source: "3", target: "5", relationship: "direct"},
		{source: "4", target: "5", relationship: valueobjects.RelationshipCollaboration},
	}

	for _, entry := range edges {
		chart.SetSelectedRelationship(entry.relationship)
		if _, err := chart.Connect(entry.source, entry.target); err != nil {
			return nil, fmt.Errorf("seeding edge %s-%s: %w", entry.source, entry.target, err)
		}
	}

	// Reset the pen and discard the replay events; the seed is the
	// starting state, not user activity.
	chart.SetSelectedRelationship("direct")
	chart.MarkEventsAsCommitted()

	return chart, nil
}
