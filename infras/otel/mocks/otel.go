package mocks

import (
	"casona/infras/otel"
	"context"
)

// fakeOtel is a no-op Otel implementation for tests.
type fakeOtel struct{}

func NewOtel() otel.Otel {
	return &fakeOtel{}
}

func (f *fakeOtel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
