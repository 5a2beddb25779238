package location

import "errors"

// Location capture errors, mirroring the platform geolocation failure modes.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("location position unavailable")
	ErrTimeout             = errors.New("location request timed out")
	ErrUnsupported         = errors.New("location is not supported on this device")
)

// ErrorForCode maps the geolocation error code forwarded by the console UI to
// the capture error taxonomy. Unknown codes count as unavailable.
func ErrorForCode(code string) error {
	switch code {
	case "PERMISSION_DENIED":
		return ErrPermissionDenied
	case "POSITION_UNAVAILABLE":
		return ErrPositionUnavailable
	case "TIMEOUT":
		return ErrTimeout
	case "UNSUPPORTED":
		return ErrUnsupported
	default:
		return ErrPositionUnavailable
	}
}
