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
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Request field names, as they appear on the wire.
const (
	FieldSellerID   = "sellerID"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldLikes      = "likes"
	FieldViewCount  = "viewCount"
	FieldContacts   = "contacts"
	FieldStatistics = "statistics"
)

// Response field names.  Note the seller id changes case between request and
// response.
const (
	FieldID           = "id"
	FieldItemSellerID = "sellerId"
	FieldCreatedAt    = "createdAt"
)

// Statistics are the engagement counters of an item.
type Statistics struct {
	Likes     int64 `json:"likes"`
	ViewCount int64 `json:"viewCount"`
	Contacts  int64 `json:"contacts"`
}

// ItemRequest is the canonical, flattened, create payload.
type ItemRequest struct {
	SellerID  int64  `json:"sellerID" validate:"min=111111,max=999999"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"gte=0"`
	Likes     int64  `json:"likes" validate:"gte=0"`
	ViewCount int64  `json:"viewCount" validate:"gte=0"`
	Contacts  int64  `json:"contacts" validate:"gte=0"`
}

// Statistics returns the counters carried by the request.
func (r ItemRequest) Statistics() Statistics {
	return Statistics{
		Likes:     r.Likes,
		ViewCount: r.ViewCount,
		Contacts:  r.Contacts,
	}
}

// Nested converts the request to the documented, but not accepted, shape.
func (r ItemRequest) Nested() NestedItemRequest {
	return NestedItemRequest{
		SellerID:   r.SellerID,
		Name:       r.Name,
		Price:      r.Price,
		Statistics: r.Statistics(),
	}
}

// NestedItemRequest is the create payload as published in the API collection.
// See DefectNestedStatistics.
type NestedItemRequest struct {
	SellerID   int64      `json:"sellerID"`
	Name       string     `json:"name"`
	Price      int64      `json:"price"`
	Statistics Statistics `json:"statistics"`
}

// Item is an item as returned by the provider.  Statistics may come back
// nested or flattened, both are decoded, use Stats to read them.
type Item struct {
	ID         string      `json:"id"`
	SellerID   int64       `json:"sellerId"`
	Name       string      `json:"name"`
	Price      int64       `json:"price"`
	Statistics *Statistics `json:"statistics,omitempty"`
	Likes      *int64      `json:"likes,omitempty"`
	ViewCount  *int64      `json:"viewCount,omitempty"`
	Contacts   *int64      `json:"contacts,omitempty"`
	CreatedAt  string      `json:"createdAt"`

	// fields records which keys were present in the payload.
	fields map[string]struct{}
}

// UnmarshalJSON decodes the item and remembers which fields were sent.
func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Item(decoded)

	i.fields = make(map[string]struct{}, len(raw))
	for key := range raw {
		i.fields[key] = struct{}{}
	}

	return nil
}

// Has reports whether the field was present in the decoded payload.
func (i *Item) Has(field string) bool {
	_, ok := i.fields[field]
	return ok
}

// Stats returns the item's counters from whichever shape the provider used.
// The boolean is false if neither shape is complete.
func (i *Item) Stats() (Statistics, bool) {
	if i.Statistics != nil {
		return *i.Statistics, true
	}

	if i.Likes == nil || i.ViewCount == nil || i.Contacts == nil {
		return Statistics{}, false
	}

	return Statistics{
		Likes:     *i.Likes,
		ViewCount: *i.ViewCount,
		Contacts:  *i.Contacts,
	}, true
}

// Response is a raw provider response.
type Response struct {
	// Method and Path identify the request that produced the response.
	Method string
	Path   string

	StatusCode int
	Header     http.Header
	Body       []byte

	// TraceID and RequestID correlate the request with provider side logs.
	TraceID   string
	RequestID string
	Duration  time.Duration
}

// String is a compact description used in assertion messages.
func (r *Response) String() string {
	return fmt.Sprintf("%s %s status=%d trace_id=%s request_id=%s body=%s", r.Method, r.Path, r.StatusCode, r.TraceID, r.RequestID, string(r.Body))
}
