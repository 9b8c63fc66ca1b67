// Package constants holds string identifiers shared across layers.
package constants

// Supported event publisher providers
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)
