package config

// DomainConfig holds the configurable business rules for the chart
type DomainConfig struct {
	// Chart constraints
	MaxNodesPerChart int
	MaxEdgesPerChart int

	// Agent constraints
	MaxNameLength         int
	MaxInstructionsLength int
	MaxToolsPerAgent      int
	MaxSecretsPerAgent    int

	// Connection behavior. Self-loops and repeated source/target pairs
	// are accepted by default; the editor never guarded against them.
	AllowSelfConnections bool
	AllowDuplicateEdges  bool

	// Default spawn position for newly added nodes
	DefaultSpawnX float64
	DefaultSpawnY float64
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxNodesPerChart: 10000,
		MaxEdgesPerChart: 50000,

		MaxNameLength:         200,
		MaxInstructionsLength: 10000,
		MaxToolsPerAgent:      50,
		MaxSecretsPerAgent:    50,

		AllowSelfConnections: true,
		AllowDuplicateEdges:  true,

		DefaultSpawnX: 250,
		DefaultSpawnY: 100,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More restrictive limits for production
	config.MaxNodesPerChart = 5000
	config.MaxEdgesPerChart = 25000

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}
