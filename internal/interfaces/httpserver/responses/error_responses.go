package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/granite-climbing/beta-api/internal/utils/platformerrors"
)

// ErrorResponse is the uniform JSON error envelope. No internal detail is
// surfaced to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError converts a domain error into the error envelope with the
// status mapped from its type. For 5xx-class errors the fallback message is
// used so that internal wording never leaks.
func HandleError(reqCtx *gin.Context, err error, fallback string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())

		message := platformErr.Message
		if message == "" || statusCode >= http.StatusInternalServerError {
			message = fallback
		}

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
		return
	}
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}

// RespondError emits the error envelope with an explicit status.
func RespondError(reqCtx *gin.Context, statusCode int, message string) {
	reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}
