package api

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "admin privileges required",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "missing server configuration",

		1100: "center not found",
		1101: "no valid fields to update",

		1200: "program rule not found",

		1300: "geocoding service unavailable",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorNotAdmin                   = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorConfigMissing      = errorJSON(1012)

	errorCenterNotFound     = errorJSON(1100)
	errorNoUpdatableFields  = errorJSON(1101)
	errorRuleNotFound       = errorJSON(1200)
	errorGeocodeUnavailable = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetail attaches the specific validation failure to a coded error
func withDetail(base ErrorResponse, detail string) ErrorResponse {
	base.Message = base.Message + ": " + detail
	return base
}
