package api

import "github.com/kisan-sahay/kisan-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotExist.Error(),
		1102: store.ErrInvalidCredentials.Error(),
		1103: "this role cannot sign up",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrSchemeNotExist.Error(),
		1202: store.ErrNotificationNotExist.Error(),

		1300: "the action is not allowed for this account",
		1301: "the help request has changed, refresh and retry",
		1302: "storage temporarily unavailable",
		1303: store.ErrAlreadyApplied.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)
	errorRoleNotRegistrable = errorJSON(1103)

	errorRequestNotExist      = errorJSON(1200)
	errorSchemeNotExist       = errorJSON(1201)
	errorNotificationNotExist = errorJSON(1202)

	errorForbidden        = errorJSON(1300)
	errorStaleState       = errorJSON(1301)
	errorStoreUnavailable = errorJSON(1302)
	errorAlreadyApplied   = errorJSON(1303)
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

// withMessage keeps the code of an error object and replaces its message
func withMessage(obj ErrorResponse, message string) ErrorResponse {
	obj.Message = message
	return obj
}
