// Package constants holds shared domain constants.
package constants

// Runtime environments.
const (
	EnvDevelop = "develop"
	EnvRelease = "release"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
