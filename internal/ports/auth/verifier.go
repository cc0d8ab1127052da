package auth

import "context"

// WriteVerifier valida un token de escritura y devuelve claims o error.
// En dev puede ser nil; el middleware acepta entonces el header X-Member.
type WriteVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
