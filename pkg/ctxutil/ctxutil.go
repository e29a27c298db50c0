// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	callerKey    struct{}
	requestIDKey struct{}
)

// Caller is the authenticated user behind a request.
type Caller struct {
	ID   uuid.UUID
	Role string
}

// WithCaller stores the caller in ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFromCtx returns the caller, or false for anonymous requests. A
// caller with a nil ID counts as anonymous.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	if !ok || c.ID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

// WithUserID sets the caller ID, keeping any role already present.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	c, _ := ctx.Value(callerKey{}).(Caller)
	c.ID = id
	return WithCaller(ctx, c)
}

// UserIDFromCtx returns the caller ID, or uuid.Nil and false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CallerFromCtx(ctx)
	return c.ID, ok
}

// WithUserRole sets the caller role, keeping any ID already present.
func WithUserRole(ctx context.Context, role string) context.Context {
	c, _ := ctx.Value(callerKey{}).(Caller)
	c.Role = role
	return WithCaller(ctx, c)
}

// UserRoleFromCtx returns the caller role, or "".
func UserRoleFromCtx(ctx context.Context) string {
	c, _ := ctx.Value(callerKey{}).(Caller)
	return c.Role
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the correlation ID set by the RequestID
// middleware, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
