package location

import "context"

type ctxKey int

const forwardedKey ctxKey = 0

// WithForwardedFix stores the fix (or capture failure) the console UI
// forwarded with the current request, for ContextSource to serve.
func WithForwardedFix(ctx context.Context, src FixSource) context.Context {
	return context.WithValue(ctx, forwardedKey, src)
}

// ContextSource serves the per-request forwarded fix. A request that carries
// no fix fails capture as position-unavailable.
type ContextSource struct{}

func (ContextSource) CurrentPosition(ctx context.Context, opts Options) (Fix, error) {
	src, ok := ctx.Value(forwardedKey).(FixSource)
	if !ok {
		return Fix{}, ErrPositionUnavailable
	}
	return src.CurrentPosition(ctx, opts)
}
