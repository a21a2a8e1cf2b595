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
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/test/api"
)

var _ = Describe("Get Item", func() {
	Context("When retrieving an item by id", func() {
		Describe("Given the item exists", func() {
			var created *api.CreatedItem

			BeforeEach(func() {
				created = api.CreateItemWithCleanup(client, ctx, itemapi.ValidItemPayload(itemapi.UniqueSellerID()))
			})

			It("TC-017 should return the item as created", Label(smoke, positive), func() {
				response, err := client.GetItem(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(response, http.StatusOK)
				expectContract(response)

				item := api.ExpectItem(response)
				Expect(item.ID).To(Equal(created.ID))
				api.ExpectItemMatches(item, created.Request)
				api.ExpectItemFields(item)
			})

			It("should return the same item on every read", Label(positive), func() {
				var first *itemapi.Item

				for range 3 {
					response, err := client.GetItem(ctx, created.ID)
					Expect(err).NotTo(HaveOccurred())
					api.ExpectStatus(response, http.StatusOK)

					item := api.ExpectItem(response)

					if first == nil {
						first = item
						continue
					}

					Expect(item.ID).To(Equal(first.ID))
					Expect(item.Name).To(Equal(first.Name))
					Expect(item.Price).To(Equal(first.Price))
					Expect(item.CreatedAt).To(Equal(first.CreatedAt))
				}
			})
		})

		Describe("Given the item does not exist", func() {
			It("TC-018 should return not found", Label(negative), func() {
				response, err := client.GetItem(ctx, "nonexistent-id-12345")
				Expect(err).NotTo(HaveOccurred())

				api.ExpectOutcome(response, itemapi.Expect(http.StatusNotFound).Tolerating(http.StatusBadRequest, itemapi.DefectNotFoundAsBadRequest))
			})
		})

		Describe("Given a malformed id", func() {
			It("TC-019 should not reflect markup", Label(negative), func() {
				id := "<script>alert('xss')</script>"

				response, err := client.GetItem(ctx, id)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectOutcome(response, itemapi.Expect(http.StatusBadRequest, http.StatusNotFound))
				api.ExpectNoReflection(response, "<script>")
			})

			It("TC-020 should reject an empty id", Label(negative, boundary), func() {
				response, err := client.GetItem(ctx, "")
				Expect(err).NotTo(HaveOccurred())

				// The path collapses to the collection, which may not be routed
				// at all or may not allow GET.
				api.ExpectOutcome(response, itemapi.Expect(http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed))
			})

			It("TC-021 should reject a 10000 character id", Label(negative, boundary), func() {
				response, err := client.GetItem(ctx, strings.Repeat("a", 10000))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectOutcome(response, itemapi.Expect(http.StatusBadRequest, http.StatusNotFound, http.StatusRequestURITooLong))
			})
		})
	})
})
