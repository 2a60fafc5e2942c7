package mocks

import (
	"casona/infras/otel"
)

type fakeScope struct{}

func NewScope() otel.Scope {
	return &fakeScope{}
}

func (f *fakeScope) End()                                    {}
func (f *fakeScope) TraceError(err error)                    {}
func (f *fakeScope) TraceIfError(err error)                  {}
func (f *fakeScope) AddEvent(name string)                    {}
func (f *fakeScope) SetAttribute(key string, value any)      {}
func (f *fakeScope) SetAttributes(attributes map[string]any) {}
