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

package itemapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when a single resource was expected but
	// the provider returned nothing, or an empty array.
	ErrEmptyResponse = errors.New("empty response")

	// ErrUnexpectedShape is returned when the body is neither of the shapes
	// the provider is known to use.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// decodeOne decodes a body that is either a single object or an array whose
// first element is the object of interest.  The provider is inconsistent here
// so both are accepted.
func decodeOne[T any](body []byte, what string) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: decoding %s", ErrEmptyResponse, what)
	}

	switch trimmed[0] {
	case '{':
		var out T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("unmarshaling %s: %w", what, err)
		}

		return &out, nil
	case '[':
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("unmarshaling %s list: %w", what, err)
		}

		if len(out) == 0 {
			return nil, fmt.Errorf("%w: decoding %s", ErrEmptyResponse, what)
		}

		return &out[0], nil
	default:
		return nil, fmt.Errorf("%w: decoding %s: %.64s", ErrUnexpectedShape, what, string(trimmed))
	}
}

// DecodeItem decodes a create or get item response.
func DecodeItem(body []byte) (*Item, error) {
	return decodeOne[Item](body, "item")
}

// DecodeStatistics decodes a get statistic response.
func DecodeStatistics(body []byte) (*Statistics, error) {
	return decodeOne[Statistics](body, "statistics")
}

// DecodeFields decodes a single object, or single element array, into its raw
// fields, for presence checks.
func DecodeFields(body []byte) (map[string]json.RawMessage, error) {
	fields, err := decodeOne[map[string]json.RawMessage](body, "object")
	if err != nil {
		return nil, err
	}

	return *fields, nil
}

// DecodeItems decodes a seller listing, which is always an array.
func DecodeItems(body []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: seller listing is not an array: %.64s", ErrUnexpectedShape, string(trimmed))
	}

	var items []Item
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("unmarshaling seller listing: %w", err)
	}

	return items, nil
}

// ItemIDs returns the ids of the given items in order.
func ItemIDs(items []Item) []string {
	ids := make([]string, len(items))

	for i := range items {
		ids[i] = items[i].ID
	}

	return ids
}
