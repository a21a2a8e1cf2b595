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

package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

var (
	// ErrRouteNotFound is returned when a request doesn't match any documented
	// operation.
	ErrRouteNotFound = errors.New("route not found")
)

// Validator checks requests and responses against an OpenAPI document.
type Validator struct {
	router routers.Router
}

// NewValidator creates a validator for the given document.
func NewValidator(doc *openapi3.T) (*Validator, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// NewDefaultValidator creates a validator for the embedded document.
func NewDefaultValidator(ctx context.Context) (*Validator, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	return NewValidator(doc)
}

// findRoute maps a request to a documented operation.
func (v *Validator) findRoute(r *http.Request) (*routers.Route, map[string]string, error) {
	route, params, err := v.router.FindRoute(r)
	if err != nil {
		if _, ok := err.(*routers.RouteError); ok { //nolint:errorlint
			return nil, nil, fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path)
		}

		return nil, nil, fmt.Errorf("finding route: %w", err)
	}

	return route, params, nil
}

// ValidateRequest checks an inbound request.  The request body, if read, is
// restored so handlers can consume it.
func (v *Validator) ValidateRequest(r *http.Request) error {
	route, params, err := v.findRoute(r)
	if err != nil {
		return err
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: params,
		Route:      route,
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		return fmt.Errorf("request failed validation: %w", err)
	}

	return nil
}

// ValidateResponse checks a response to the request identified by method and
// path.  Undocumented status codes are not an error.
func (v *Validator) ValidateResponse(ctx context.Context, method, path string, status int, header http.Header, body []byte) error {
	r, err := http.NewRequestWithContext(ctx, method, path, nil)
	if err != nil {
		return fmt.Errorf("creating validation request: %w", err)
	}

	route, params, err := v.findRoute(r)
	if err != nil {
		return err
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: params,
			Route:      route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input.SetBodyBytes(body)); err != nil {
		return fmt.Errorf("response failed validation: %w", err)
	}

	return nil
}
