package exemption

import "errors"

var (
	ErrExemptionNotFound         = errors.New("exemption request not found")
	ErrDuplicateExemption        = errors.New("an identical exemption request is already pending or approved")
	ErrExemptionAlreadyProcessed = errors.New("exemption request has already been approved or rejected")
)
