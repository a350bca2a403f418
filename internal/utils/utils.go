package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/sashabaranov/go-openai"
)

// transientMarkers are substrings of error messages worth one more attempt.
var transientMarkers = []string{
	"rate limit",
	"500 internal server error",
	"502 bad gateway",
	"503 service unavailable",
	"504 gateway timeout",
	"overloaded",
	"timeout",
	"connection reset by peer",
	"context deadline exceeded",
}

// ShouldRetry reports whether err from a generation backend looks transient.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return retryableStatus(openAIErr.HTTPStatusCode)
	}
	var openAIReqErr *openai.RequestError
	if errors.As(err, &openAIReqErr) {
		return retryableStatus(openAIReqErr.HTTPStatusCode)
	}

	var anthropicErr *anthropic.APIError
	if errors.As(err, &anthropicErr) {
		return anthropicErr.IsRateLimitErr() || anthropicErr.IsOverloadedErr() || anthropicErr.IsApiErr()
	}
	var anthropicReqErr *anthropic.RequestError
	if errors.As(err, &anthropicReqErr) {
		return retryableStatus(anthropicReqErr.StatusCode)
	}

	errMsg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
