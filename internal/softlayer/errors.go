package softlayer

import (
	"errors"
	"fmt"
)

// FaultTransport is the fault code used when the request never produced an
// API response (connection refused, timeout, truncated body).
const FaultTransport = "TransportError"

// FaultDecode is the fault code used when a successful response body could
// not be decoded into the expected type.
const FaultDecode = "DecodeError"

// APIError is a fault returned by the SoftLayer API.
type APIError struct {
	FaultCode   string `json:"code"`
	FaultString string `json:"error"`
	StatusCode  int    `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.FaultCode != "" {
		return fmt.Sprintf("%s: %s", e.FaultCode, e.FaultString)
	}
	return e.FaultString
}

// IsAuthError returns true if the credentials were rejected.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == 401 || e.FaultCode == "SoftLayer_Exception_InvalidCredentials"
}

// IsTransport returns true if the request failed before reaching the API.
func (e *APIError) IsTransport() bool {
	return e.FaultCode == FaultTransport
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
