package payment

import (
	"context"

	"github.com/google/uuid"
)

// LocalProvider issues references without talking to a real processor.
// Used in development and tests; a real integration implements Provider
// against the processor's intent API.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (LocalProvider) CreateIntent(_ context.Context, _ float64, _ string, _ int64) (string, error) {
	return "pi_" + uuid.NewString(), nil
}
