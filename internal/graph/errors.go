package graph

import (
	"errors"
	"fmt"

	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
)

// UpstreamError reports a failed Graph call. The OData error code and
// message are extracted when available so handlers can embed the upstream
// detail in their error envelope.
type UpstreamError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: graph call failed (%s): %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: graph call failed: %s", e.Operation, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// wrapGraphError converts an SDK error into an *UpstreamError, pulling the
// code and message out of OData error payloads when present.
func wrapGraphError(operation string, err error) error {
	if err == nil {
		return nil
	}

	upstream := &UpstreamError{
		Operation: operation,
		Message:   err.Error(),
		Err:       err,
	}

	var odataErr *odataerrors.ODataError
	if errors.As(err, &odataErr) {
		if info := odataErr.GetErrorEscaped(); info != nil {
			if info.GetCode() != nil {
				upstream.Code = *info.GetCode()
			}
			if info.GetMessage() != nil {
				upstream.Message = *info.GetMessage()
			}
		}
	}

	return upstream
}
