package auth

import "context"

// credentialKey is a private type for the credential context key.
type credentialKey struct{}

// SetCredential stores the admitted credential in the context.
func SetCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, credentialKey{}, cred)
}

// CredentialFromContext retrieves the admitted credential.
// Reports false if the request never passed a guard.
func CredentialFromContext(ctx context.Context) (Credential, bool) {
	cred, ok := ctx.Value(credentialKey{}).(Credential)
	return cred, ok
}
