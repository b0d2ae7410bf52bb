package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	shared "blog-cli/shared"
)

// HandleApiError turns a non-2xx response into an ApiError. The body text is
// the error detail; json bodies are compacted onto one line.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	msg := strings.TrimSpace(string(errBody))

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var v any
		if err := json.Unmarshal(errBody, &v); err != nil {
			log.Printf("Error unmarshalling JSON error body: %v\n", err)
		} else if compact, err := json.Marshal(v); err == nil {
			msg = string(compact)
		}
	}

	if msg == "" {
		msg = http.StatusText(r.StatusCode)
	}

	return &shared.ApiError{
		Type:   shared.ApiErrorTypeStatus,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

// requestError classifies a transport failure. Only an explicit context
// cancellation counts as cancelled; timeouts are ordinary failures.
func requestError(ctx context.Context, err error) *shared.ApiError {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return &shared.ApiError{Type: shared.ApiErrorTypeCancelled, Msg: err.Error()}
	}
	return &shared.ApiError{Type: shared.ApiErrorTypeNetwork, Msg: fmt.Sprintf("error sending request: %v", err)}
}
