// Package constants contains configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Application state store providers
const (
	StoreProviderRedis    = "redis"
	StoreProviderPostgres = "postgres"
	StoreProviderMemory   = "memory"
)

// Event types carried in the "event_type" message attribute.
const (
	EventRecordSubmitted = "record.submitted"
)
