package exemption

import (
	"context"
	"time"
)

type ExemptionRepository interface {
	Create(ctx context.Context, ex Exemption) (Exemption, error)

	// HasActiveDuplicate reports whether an identical request
	// (staff, date, type, session, window) is pending or approved
	HasActiveDuplicate(ctx context.Context, staffID string, date time.Time, exType, session string, startTime, endTime *string) (bool, error)

	GetByID(ctx context.Context, id string) (Exemption, error)

	// UpdateStatus transitions only rows still pending; returns
	// ErrExemptionAlreadyProcessed when the row is terminal
	UpdateStatus(ctx context.Context, id string, status string, reviewerID string) error

	List(ctx context.Context, filter ExemptionFilter) ([]Exemption, error)

	// ListApprovedForDate returns approved exemptions covering a date,
	// consumed by the report overlay
	ListApprovedForDate(ctx context.Context, staffID string, date time.Time) ([]Exemption, error)
}
