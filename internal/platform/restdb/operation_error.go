package restdb

import (
	"encoding/json"
	"fmt"
)

type OperationErrorCode string

const (
	OperationErrorValidation      OperationErrorCode = "validation_failed"
	OperationErrorEncodeFailed    OperationErrorCode = "encode_failed"
	OperationErrorDecodeFailed    OperationErrorCode = "decode_failed"
	OperationErrorTransportFailed OperationErrorCode = "transport_failed"
	OperationErrorTimeout         OperationErrorCode = "timeout"
	OperationErrorUpstream        OperationErrorCode = "upstream_failed"
)

// OperationError is the single error shape returned by the client. For
// OperationErrorUpstream, StatusCode and Body carry the store's own status
// and error payload so callers can pass both through unchanged.
type OperationError struct {
	Code       OperationErrorCode
	Operation  string
	StatusCode int
	Body       json.RawMessage
	Message    string
	Cause      error
}

func (e *OperationError) Error() string {
	if e == nil {
		return "restdb operation failed"
	}
	if e.Message != "" {
		return fmt.Sprintf(
			"restdb operation failed (op=%s code=%s status=%d): %s",
			e.Operation,
			e.Code,
			e.StatusCode,
			e.Message,
		)
	}
	if e.Cause != nil {
		return fmt.Sprintf(
			"restdb operation failed (op=%s code=%s status=%d): %v",
			e.Operation,
			e.Code,
			e.StatusCode,
			e.Cause,
		)
	}
	return fmt.Sprintf(
		"restdb operation failed (op=%s code=%s status=%d)",
		e.Operation,
		e.Code,
		e.StatusCode,
	)
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func opErr(op string, code OperationErrorCode, msg string, cause error) error {
	return &OperationError{
		Code:      code,
		Operation: op,
		Message:   msg,
		Cause:     cause,
	}
}
