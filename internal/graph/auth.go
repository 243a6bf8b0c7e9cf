package graph

import (
	"context"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// Delegated Graph scopes. Notes.ReadWrite covers the signed-in user's own
// notebooks; User.Read is needed for /me. Notes.ReadWrite.All usually
// requires admin consent and is deliberately avoided.
var scopes = []string{
	"https://graph.microsoft.com/User.Read",
	"https://graph.microsoft.com/Notes.ReadWrite",
}

// TokenProvider supplies bearer tokens for Graph requests
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// DeviceAuth signs the user in interactively via the OAuth device-code
// flow and hands out access tokens. The credential caches tokens
// internally, so Token may be called per request.
type DeviceAuth struct {
	cred *azidentity.DeviceCodeCredential
}

// NewDeviceAuth creates the device-code credential. authority optionally
// overrides tenantID for sign-in ("consumers", "organizations" or
// "common" for personal Microsoft accounts).
func NewDeviceAuth(clientID, tenantID, authority string) (*DeviceAuth, error) {
	tenant := tenantID
	if authority != "" {
		tenant = authority
	}

	cred, err := azidentity.NewDeviceCodeCredential(&azidentity.DeviceCodeCredentialOptions{
		ClientID: clientID,
		TenantID: tenant,
		UserPrompt: func(_ context.Context, dc azidentity.DeviceCodeMessage) error {
			// The message tells the user which URL to open and which code to enter
			fmt.Fprintln(os.Stderr, dc.Message)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create device code credential: %w", err)
	}
	return &DeviceAuth{cred: cred}, nil
}

// Token acquires (or reuses) an access token for the Graph scopes
func (a *DeviceAuth) Token(ctx context.Context) (string, error) {
	tk, err := a.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: scopes})
	if err != nil {
		return "", fmt.Errorf("acquire token: %w", err)
	}
	return tk.Token, nil
}

// StaticToken is a TokenProvider for pre-acquired tokens
type StaticToken string

// Token returns the static token
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}
