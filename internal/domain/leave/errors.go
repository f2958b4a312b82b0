package leave

import "errors"

var (
	ErrLeaveTypeNotFound   = errors.New("leave type not found")
	ErrLeaveRecordNotFound = errors.New("leave record not found")
	ErrQuotaNotFound       = errors.New("leave quota not found")
)
