package constants

import "net/http"

// CodedError carries the HTTP status code the API error handler should
// respond with. Errors wrapped around a CodedError keep the code.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden         = NewCodedError(http.StatusForbidden, "forbidden")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrEmailAlreadyTaken = NewCodedError(http.StatusConflict, "email already taken")

	ErrNoActiveContest    = NewCodedError(http.StatusBadRequest, "no active contest")
	ErrUploadNotStarted   = NewCodedError(http.StatusBadRequest, "upload window has not started")
	ErrUploadEnded        = NewCodedError(http.StatusBadRequest, "upload window has ended")
	ErrUploadLimitReached = NewCodedError(http.StatusBadRequest, "upload limit for this contest reached")
	ErrBadSeriesSize      = NewCodedError(http.StatusBadRequest, "a series must contain 4 to 6 images")
	ErrFileTooLarge       = NewCodedError(http.StatusBadRequest, "image exceeds the 20MB limit")
	ErrNotAnImage         = NewCodedError(http.StatusBadRequest, "only image files are accepted")
	ErrScoreOutOfRange    = NewCodedError(http.StatusBadRequest, "score must be between 0 and 100")
	ErrEmptyComment       = NewCodedError(http.StatusBadRequest, "comment must not be empty")
)
