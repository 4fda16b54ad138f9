package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidType           = errors.New("unknown leave type")
	ErrInvalidStatus         = errors.New("status must be Pending, Approved or Rejected")
)
