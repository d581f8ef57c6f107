package audit

import "context"

// Sink persists audit facts. Failures are the caller's to log; they never
// propagate into payroll operations.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_audit -source=repository.go
type Sink interface {
	CreateBatch(ctx context.Context, facts []Fact) error
}

// Publisher hands facts to the audit side-channel without blocking.
type Publisher interface {
	Publish(ctx context.Context, facts ...Fact)
}
