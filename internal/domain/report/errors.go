package report

import "errors"

var (
	ErrReportNotFound        = errors.New("daily report not found")
	ErrAdjustmentOutOfBounds = errors.New("additional late minutes outside the permitted bound")
	ErrInvalidDateRange      = errors.New("start date must not be after end date")
)
