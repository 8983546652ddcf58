package tracker

import (
	"context"

	"github.com/dmitrymomot/gatrack/pkg/tracking"
)

type (
	visitorKey struct{}
	sessionKey struct{}
)

// WithVisitor returns a copy of ctx carrying v.
func WithVisitor(ctx context.Context, v *tracking.Visitor) context.Context {
	return context.WithValue(ctx, visitorKey{}, v)
}

// VisitorFromContext returns the visitor stored by the middleware, if any.
func VisitorFromContext(ctx context.Context) (*tracking.Visitor, bool) {
	if ctx == nil {
		return nil, false
	}
	v, ok := ctx.Value(visitorKey{}).(*tracking.Visitor)
	return v, ok && v != nil
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *tracking.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by the middleware, if any.
func SessionFromContext(ctx context.Context) (*tracking.Session, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(sessionKey{}).(*tracking.Session)
	return s, ok && s != nil
}
