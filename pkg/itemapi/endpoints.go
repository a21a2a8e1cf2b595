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
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Item endpoints.
func (e *Endpoints) CreateItem() string {
	return "/api/1/item"
}

func (e *Endpoints) GetItem(itemID string) string {
	return fmt.Sprintf("/api/1/item/%s", url.PathEscape(itemID))
}

// Seller endpoints.
func (e *Endpoints) SellerItems(sellerID int64) string {
	return e.SellerItemsRaw(strconv.FormatInt(sellerID, 10))
}

// SellerItemsRaw takes the seller segment verbatim, so non-numeric values
// can be sent.
func (e *Endpoints) SellerItemsRaw(sellerID string) string {
	return fmt.Sprintf("/api/1/%s/item", url.PathEscape(sellerID))
}

// Statistic endpoints.
func (e *Endpoints) GetStatistic(itemID string) string {
	return fmt.Sprintf("/api/1/statistic/%s", url.PathEscape(itemID))
}

// Deletion lives on the second API version.
func (e *Endpoints) DeleteItem(itemID string) string {
	return fmt.Sprintf("/api/2/item/%s", url.PathEscape(itemID))
}
