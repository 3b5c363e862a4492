package httpx

import "context"

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyUsername  ctxKey = "username"
	CtxKeyPrincipal ctxKey = "principal"
	CtxKeyScopes    ctxKey = "scopes"
)

// PrincipalFromContext returns the authenticated operator's display name for
// attribution in confirmation messages. Empty when unauthenticated.
func PrincipalFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyPrincipal).(string); ok {
		return v
	}
	return ""
}

// UsernameFromContext returns the authenticated operator's username.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
