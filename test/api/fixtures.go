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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
)

// CreatedItem is an item created by a fixture, along with the payload that
// created it, for later comparison.
type CreatedItem struct {
	itemapi.Item

	// Request is never sent back to the provider.
	Request itemapi.ItemRequest
}

// CreateItemWithCleanup creates an item and schedules its deletion.  Anything
// but a 200 with a decodable item fails the spec.
func CreateItemWithCleanup(client ItemClient, ctx context.Context, payload itemapi.ItemRequest) *CreatedItem {
	response, err := client.CreateItem(ctx, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.StatusCode).To(Equal(http.StatusOK), "Failed to create item fixture: %s", response)

	item, err := itemapi.DecodeItem(response.Body)
	Expect(err).NotTo(HaveOccurred())
	Expect(item.ID).NotTo(BeEmpty(), "Created item has no id: %s", response)

	GinkgoWriter.Printf("Created item with ID: %s\n", item.ID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	CleanupItem(client, ctx, item.ID)

	return &CreatedItem{
		Item:    *item,
		Request: payload,
	}
}

// CleanupItem schedules best effort deletion of an item a spec created
// directly, e.g. a negative scenario the provider unexpectedly accepted.
func CleanupItem(client ItemClient, ctx context.Context, itemID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up item: %s\n", itemID)

		response, err := client.DeleteItem(ctx, itemID)

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete item %s: %v\n", itemID, err)
		case response.StatusCode != http.StatusOK:
			GinkgoWriter.Printf("Warning: Failed to delete item %s: status %d\n", itemID, response.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted item: %s\n", itemID)
		}
	})
}

// CleanupIfCreated schedules deletion of whatever a create response made, if
// it made anything.
func CleanupIfCreated(client ItemClient, ctx context.Context, response *itemapi.Response) {
	if response.StatusCode != http.StatusOK {
		return
	}

	item, err := itemapi.DecodeItem(response.Body)
	if err != nil || item.ID == "" {
		return
	}

	CleanupItem(client, ctx, item.ID)
}

// SellerItemsFixture is a set of items belonging to one seller.
type SellerItemsFixture struct {
	SellerID int64
	Items    []*CreatedItem
}

// IDs returns the ids of the fixture's items.
func (f *SellerItemsFixture) IDs() []string {
	ids := make([]string, len(f.Items))

	for i, item := range f.Items {
		ids[i] = item.ID
	}

	return ids
}

// CreateSellerItemsFixture creates count items for a seller, named "Item 1"
// onwards and priced 1000 times their index.  Items that fail to create are
// logged and left out.
func CreateSellerItemsFixture(client ItemClient, ctx context.Context, sellerID int64, count int) *SellerItemsFixture {
	fixture := &SellerItemsFixture{
		SellerID: sellerID,
		Items:    make([]*CreatedItem, 0, count),
	}

	for i := 1; i <= count; i++ {
		payload := itemapi.NewItemPayload(sellerID).
			WithName(fmt.Sprintf("Item %d", i)).
			WithPrice(itemapi.DefaultItemPrice * int64(i)).
			Build()

		if item := createItemInFixture(client, ctx, payload); item != nil {
			fixture.Items = append(fixture.Items, item)
		}
	}

	return fixture
}

// createItemInFixture creates an item with cleanup, returning nil on failure.
func createItemInFixture(client ItemClient, ctx context.Context, payload itemapi.ItemRequest) *CreatedItem {
	response, err := client.CreateItem(ctx, payload)
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to create item %q for seller %d: %v\n", payload.Name, payload.SellerID, err)
		return nil
	}

	if response.StatusCode != http.StatusOK {
		GinkgoWriter.Printf("Warning: Failed to create item %q for seller %d: %s\n", payload.Name, payload.SellerID, response)
		return nil
	}

	item, err := itemapi.DecodeItem(response.Body)
	if err != nil || item.ID == "" {
		GinkgoWriter.Printf("Warning: Failed to decode item %q for seller %d: %v\n", payload.Name, payload.SellerID, err)
		return nil
	}

	CleanupItem(client, ctx, item.ID)

	return &CreatedItem{
		Item:    *item,
		Request: payload,
	}
}
