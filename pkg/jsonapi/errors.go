package jsonapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

/*
Error type for {json:api} errors.

You can inspect the contents of the error response with type assertions.
Example:

	    err := api.Delete("/services/v2/...")
	    var e *jsonapi.Error
	    if errors.As(err, &e) {
			for _, errorItem := range e.Errors {
				if errorItem.Status == "404" {
					fmt.Println("Something was not found")
				}
			}
	    }
*/
type Error struct {
	StatusCode int
	Errors     []ErrorItem `json:"errors"`
}

type ErrorItem struct {
	Status string `json:"status,omitempty"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
	Source struct {
		Pointer   string `json:"pointer,omitempty"`
		Parameter string `json:"parameter,omitempty"`
	} `json:"source,omitempty"`
}

func (e *Error) Error() string {
	result := make([]string, 0, len(e.Errors)+1)
	result = append(result, fmt.Sprint(e.StatusCode))
	for _, errorItem := range e.Errors {
		message := errorItem.Detail
		if message == "" {
			message = errorItem.Title
		}
		result = append(result,
			fmt.Sprintf("%s: %s", errorItem.Code, message))
	}
	return strings.Join(result, ", ")
}

func parseErrorResponse(statusCode int, body []byte) *Error {
	if statusCode < 400 {
		return nil
	}
	errorResponse := Error{StatusCode: statusCode}

	// Intentionally ignore parse errors
	_ = json.Unmarshal(body, &errorResponse)

	return &errorResponse
}

type RedirectError struct {
	Location string
}

func (m *RedirectError) Error() string {
	return "jsonapi does not handle redirects. You can access the Location " +
		"header with " +
		"`var e *jsonapi.RedirectError; errors.As(err, &e); e.Location`"
}

/*
ThrottleError is returned when the server keeps responding with a throttled
or transiently-failing status (429, 502, 503, 504) after all retry attempts
have been used up. The upstream API enforces request quotas and announces
them with a Retry-After header.
*/
type ThrottleError struct {
	StatusCode int
	RetryAfter int
}

func (e *ThrottleError) Error() string {
	return fmt.Sprintf(
		"response error code %d, retry after %d seconds",
		e.StatusCode, e.RetryAfter,
	)
}

func parseThrottleResponse(statusCode int, headers http.Header) *ThrottleError {
	if statusCode != 429 &&
		statusCode != 502 &&
		statusCode != 503 &&
		statusCode != 504 {
		return nil
	}
	if statusCode != 429 {
		return &ThrottleError{statusCode, 10}
	}
	retryAfter, err := strconv.Atoi(headers.Get("Retry-After"))
	if err != nil {
		return &ThrottleError{statusCode, 1}
	}
	return &ThrottleError{statusCode, retryAfter}
}
