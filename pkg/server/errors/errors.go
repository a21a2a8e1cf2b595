/*
Copyright 2026 the Item Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package errors renders errors in the item listing error envelope.
package errors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/listing-qa/item-conformance/pkg/server/util"
)

// Error is an error that knows how it should be reported to the client.
type Error struct {
	status  int
	message string
	err     error
}

func newError(status int, message string) *Error {
	return &Error{
		status:  status,
		message: message,
	}
}

// HTTPBadRequest is raised when the request is malformed.
func HTTPBadRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

// HTTPNotFound is raised when a resource doesn't exist.  The message is
// returned to the client verbatim, so must not echo request input.
func HTTPNotFound(message string) *Error {
	return newError(http.StatusNotFound, message)
}

// HTTPMethodNotAllowed is raised when the path exists but not the method.
func HTTPMethodNotAllowed() *Error {
	return newError(http.StatusMethodNotAllowed, "method not allowed")
}

// ServerError is raised when something unexpected happens.
func ServerError(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}

// WithError attaches a cause, it is logged but never sent to the client.
func (e *Error) WithError(err error) *Error {
	e.err = err
	return e
}

// StatusCode returns the HTTP status of the error.
func (e *Error) StatusCode() int {
	return e.status
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}

	return e.message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Result is the inner error description.
type Result struct {
	Message  string         `json:"message"`
	Messages map[string]any `json:"messages"`
}

// Response is the error envelope.
type Response struct {
	Result Result `json:"result"`
	Status string `json:"status"`
}

// HandleError writes an error response.  Errors that aren't an *Error are
// treated as server errors.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpError *Error

	if !errors.As(err, &httpError) {
		httpError = ServerError("unhandled error").WithError(err)
	}

	log := logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": httpError.status,
	})

	if httpError.status >= http.StatusInternalServerError {
		log.WithError(httpError).Error("request failed")
	} else {
		log.WithError(httpError).Debug("request rejected")
	}

	response := &Response{
		Result: Result{
			Message:  httpError.message,
			Messages: map[string]any{},
		},
		Status: strconv.Itoa(httpError.status),
	}

	util.WriteJSONResponse(w, r, httpError.status, response)
}
