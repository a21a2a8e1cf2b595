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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/test/api"
)

// listSellerIDs returns the set of item ids listed for a seller.
func listSellerIDs(sellerID int64) set.Set[string] {
	GinkgoHelper()

	response, err := client.GetSellerItems(ctx, sellerID)
	Expect(err).NotTo(HaveOccurred())
	api.ExpectStatus(response, http.StatusOK)
	expectContract(response)

	return set.New[string](itemapi.ItemIDs(api.ExpectItems(response))...)
}

var _ = Describe("Item Lifecycle", func() {
	Context("When an item is created", func() {
		It("TC-031 should be visible through every read endpoint", Label(integration, smoke), func() {
			sellerID := itemapi.UniqueSellerID()
			payload := itemapi.NewItemPayload(sellerID).WithName("Integration item").WithPrice(5000).Build()

			created := api.CreateItemWithCleanup(client, ctx, payload)

			By("reading the item by id")

			response, err := client.GetItem(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusOK)

			item := api.ExpectItem(response)
			Expect(item.ID).To(Equal(created.ID))
			Expect(item.Name).To(Equal(payload.Name))
			Expect(item.Price).To(Equal(payload.Price))

			By("listing the seller's items")

			missing := set.New[string](created.ID).Difference(listSellerIDs(sellerID))
			Expect(slices.Collect(missing.All())).To(BeEmpty(), "Item should be in the seller listing")

			By("reading the item's statistics")

			response, err = client.GetStatistic(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusOK)

			fields, err := itemapi.DecodeFields(response.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields).To(HaveKey(itemapi.FieldLikes))
			Expect(fields).To(HaveKey(itemapi.FieldViewCount))
			Expect(fields).To(HaveKey(itemapi.FieldContacts))
		})

		It("TC-035 should have a creation time close to now", Label(integration), func() {
			payload := itemapi.ValidItemPayload(itemapi.UniqueSellerID())

			before := time.Now()
			response, err := client.CreateItem(ctx, payload)
			after := time.Now()

			Expect(err).NotTo(HaveOccurred())
			api.CleanupIfCreated(client, ctx, response)
			api.ExpectStatus(response, http.StatusOK)

			api.ExpectCreatedAtWithin(api.ExpectItem(response), before, after)
		})
	})

	Context("When a seller creates several items", func() {
		It("TC-032 should list all of them", Label(integration), func() {
			sellerID := itemapi.UniqueSellerID()

			ids := make([]string, 0, 5)

			for i := 1; i <= 5; i++ {
				payload := itemapi.NewItemPayload(sellerID).
					WithName(fmt.Sprintf("Item #%d", i)).
					WithPrice(itemapi.DefaultItemPrice * int64(i)).
					Build()

				ids = append(ids, api.CreateItemWithCleanup(client, ctx, payload).ID)
			}

			missing := set.New[string](ids...).Difference(listSellerIDs(sellerID))
			Expect(slices.Collect(missing.All())).To(BeEmpty(), "Items missing from the seller listing")
		})
	})

	Context("When identical payloads are created", func() {
		It("TC-033 should assign distinct ids", Label(integration), func() {
			payload := itemapi.NewItemPayload(itemapi.UniqueSellerID()).WithName("Identical item").WithPrice(999).Build()

			first := api.CreateItemWithCleanup(client, ctx, payload)
			second := api.CreateItemWithCleanup(client, ctx, payload)

			Expect(first.ID).NotTo(Equal(second.ID), "Identical payloads should not share an id")

			for _, id := range []string{first.ID, second.ID} {
				response, err := client.GetItem(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(response, http.StatusOK)
			}
		})
	})

	Context("When two sellers have items", func() {
		It("TC-034 should not leak items between sellers", Label(integration), func() {
			firstSeller := itemapi.UniqueSellerID()
			secondSeller := itemapi.OffsetSellerID(firstSeller, 1)

			first := api.CreateItemWithCleanup(client, ctx, itemapi.NewItemPayload(firstSeller).WithName("First seller item").Build())
			second := api.CreateItemWithCleanup(client, ctx, itemapi.NewItemPayload(secondSeller).WithName("Second seller item").Build())

			firstIDs := listSellerIDs(firstSeller)
			secondIDs := listSellerIDs(secondSeller)

			Expect(slices.Collect(set.New[string](first.ID).Intersection(firstIDs).All())).To(ConsistOf(first.ID))
			Expect(slices.Collect(set.New[string](second.ID).Intersection(secondIDs).All())).To(ConsistOf(second.ID))

			Expect(slices.Collect(firstIDs.Intersection(secondIDs).All())).To(BeEmpty(), "Sellers share items")
		})
	})
})
