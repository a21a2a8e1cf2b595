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
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultItemName is used when a payload doesn't care about the name.
	DefaultItemName = "Test item"

	// DefaultItemPrice is used when a payload doesn't care about the price.
	DefaultItemPrice int64 = 1000
)

// ItemPayloadBuilder builds create item payloads using a fluent interface.
// Typed payloads come from Build, payloads with missing or wrong-typed fields
// come from BuildRaw.
type ItemPayloadBuilder struct {
	request   ItemRequest
	omitted   map[string]struct{}
	overrides map[string]any
}

// NewItemPayload creates a builder with defaults for the given seller.
func NewItemPayload(sellerID int64) *ItemPayloadBuilder {
	return &ItemPayloadBuilder{
		request: ItemRequest{
			SellerID: sellerID,
			Name:     DefaultItemName,
			Price:    DefaultItemPrice,
		},
		omitted:   map[string]struct{}{},
		overrides: map[string]any{},
	}
}

// ValidItemPayload returns the default payload for a seller.
func ValidItemPayload(sellerID int64) ItemRequest {
	return NewItemPayload(sellerID).Build()
}

// WithSellerID sets the seller.
func (b *ItemPayloadBuilder) WithSellerID(sellerID int64) *ItemPayloadBuilder {
	b.request.SellerID = sellerID
	return b
}

// WithName sets the item name.
func (b *ItemPayloadBuilder) WithName(name string) *ItemPayloadBuilder {
	b.request.Name = name
	return b
}

// WithPrice sets the item price.
func (b *ItemPayloadBuilder) WithPrice(price int64) *ItemPayloadBuilder {
	b.request.Price = price
	return b
}

// WithStatistics sets all three counters.
func (b *ItemPayloadBuilder) WithStatistics(likes, viewCount, contacts int64) *ItemPayloadBuilder {
	b.request.Likes = likes
	b.request.ViewCount = viewCount
	b.request.Contacts = contacts

	return b
}

// Without drops a field from the raw payload.  Passing FieldStatistics drops
// all three counters.
func (b *ItemPayloadBuilder) Without(field string) *ItemPayloadBuilder {
	if field == FieldStatistics {
		for _, f := range []string{FieldLikes, FieldViewCount, FieldContacts} {
			b.omitted[f] = struct{}{}
		}

		return b
	}

	b.omitted[field] = struct{}{}

	return b
}

// Set replaces a field in the raw payload with an arbitrary value, e.g. a
// string where an integer belongs.
func (b *ItemPayloadBuilder) Set(field string, value any) *ItemPayloadBuilder {
	delete(b.omitted, field)
	b.overrides[field] = value

	return b
}

// Build returns the typed payload.  Omissions and overrides are not reflected.
func (b *ItemPayloadBuilder) Build() ItemRequest {
	return b.request
}

// BuildNested returns the payload in the nested statistics shape.
func (b *ItemPayloadBuilder) BuildNested() NestedItemRequest {
	return b.request.Nested()
}

// BuildRaw returns the payload as a map, with omissions and overrides
// applied.
func (b *ItemPayloadBuilder) BuildRaw() map[string]any {
	raw := map[string]any{
		FieldSellerID:  b.request.SellerID,
		FieldName:      b.request.Name,
		FieldPrice:     b.request.Price,
		FieldLikes:     b.request.Likes,
		FieldViewCount: b.request.ViewCount,
		FieldContacts:  b.request.Contacts,
	}

	for field := range b.omitted {
		delete(raw, field)
	}

	for field, value := range b.overrides {
		raw[field] = value
	}

	return raw
}

//nolint:gochecknoglobals
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate checks the payload against the constraints a well behaved provider
// enforces.
func (r ItemRequest) Validate() error {
	if err := getValidator().Struct(r); err != nil {
		return fmt.Errorf("invalid item request: %w", err)
	}

	return nil
}
