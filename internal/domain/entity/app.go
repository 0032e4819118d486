// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// App represents a tenant application whose devices and notifications are scoped together.
type App struct {
	ID              uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the app.
	Name            string    `json:"name"`              // Human-readable application name.
	APIKey          string    `json:"api_key"`           // Public identifier used by the server-to-server API.
	APISecret       string    `json:"-"`                 // Secret credential paired with the API key. Never serialized.
	VAPIDPublicKey  string    `json:"vapid_public_key"`  // VAPID public key handed to browser clients on subscribe.
	VAPIDPrivateKey string    `json:"-"`                 // VAPID private key used to sign push requests. Never serialized.
	CreatedAt       time.Time `json:"created_at"`        // Timestamp of when this app was created.
	UpdatedAt       time.Time `json:"updated_at"`        // Timestamp of the last modification.
}

// VAPIDKeys bundles the signing key pair an app uses against push services.
type VAPIDKeys struct {
	PublicKey  string
	PrivateKey string
}

// Keys returns the app's push signing key pair.
func (a *App) Keys() VAPIDKeys {
	return VAPIDKeys{
		PublicKey:  a.VAPIDPublicKey,
		PrivateKey: a.VAPIDPrivateKey,
	}
}
