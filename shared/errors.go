package shared

import "fmt"

type ApiErrorType string

const (
	ApiErrorTypeCancelled ApiErrorType = "cancelled"
	ApiErrorTypeNetwork   ApiErrorType = "network"
	ApiErrorTypeStatus    ApiErrorType = "status"
	ApiErrorTypeDecode    ApiErrorType = "decode"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Msg, e.Status)
	}
	return e.Msg
}

func (e *ApiError) IsCancelled() bool {
	return e != nil && e.Type == ApiErrorTypeCancelled
}
