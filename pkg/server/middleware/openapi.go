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

package middleware

import (
	goerrors "errors"
	"net/http"

	"github.com/listing-qa/item-conformance/pkg/openapi"
	"github.com/listing-qa/item-conformance/pkg/server/errors"
)

// OpenAPIValidator rejects requests that don't conform to the contract.
// Requests for undocumented routes are passed on so the router can answer
// them.
func OpenAPIValidator(validator *openapi.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := validator.ValidateRequest(r); err != nil {
				if goerrors.Is(err, openapi.ErrRouteNotFound) {
					next.ServeHTTP(w, r)
					return
				}

				errors.HandleError(w, r, errors.HTTPBadRequest("request body or parameters are invalid").WithError(err))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
