package exemption

import "context"

type ExemptionService interface {
	// Apply files one exemption row per requested session; an identical
	// pending or approved request is rejected as a duplicate
	Apply(ctx context.Context, req ApplyExemptionRequest) ([]ExemptionResponse, error)

	Approve(ctx context.Context, req ReviewExemptionRequest) error
	Reject(ctx context.Context, req ReviewExemptionRequest) error

	GetByID(ctx context.Context, id string) (ExemptionResponse, error)
	List(ctx context.Context, filter ExemptionFilter) ([]ExemptionResponse, error)
}
