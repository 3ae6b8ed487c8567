package interfaces

import "context"

// Identity is the verified subject of a bearer token.
type Identity struct {
	Subject string
	Email   string
}

// ITokenVerifier validates identity tokens issued by the external provider.
type ITokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
