package constants

import (
	"errors"
	"net/http"
)

// CodedError несёт HTTP-код, который отдаёт httpErrorHandler.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrInvalidRequest     = NewCodedError(http.StatusBadRequest, "invalid request")
	ErrUnrecognizedUpload = NewCodedError(http.StatusBadRequest, "не удалось определить тип файла по имени, переименуйте файл и загрузите снова")
	ErrProductNotFound    = NewCodedError(http.StatusNotFound, "product not found")
	ErrSampleNotFound     = NewCodedError(http.StatusNotFound, "sample not found")
	ErrStepNotFound       = NewCodedError(http.StatusNotFound, "process step not found")
	ErrNoSamples          = NewCodedError(http.StatusConflict, "сначала добавьте партию")
	ErrInvalidTransition  = NewCodedError(http.StatusConflict, "navigation transition is not allowed")
	ErrExportSinkDisabled = NewCodedError(http.StatusServiceUnavailable, "export sink is not configured")
)

// CodeOf returns the HTTP code of the first CodedError in the chain.
func CodeOf(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return http.StatusInternalServerError
}
