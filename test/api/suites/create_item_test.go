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
	"math"
	"net/http"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/test/api"
)

var _ = Describe("Create Item", func() {
	var sellerID int64

	BeforeEach(func() {
		sellerID = itemapi.UniqueSellerID()
	})

	// create posts a body and schedules deletion of anything it made.
	create := func(body any) *itemapi.Response {
		GinkgoHelper()

		response, err := client.CreateItem(ctx, body)
		Expect(err).NotTo(HaveOccurred())

		api.CleanupIfCreated(client, ctx, response)

		return response
	}

	Context("When creating an item with a valid payload", func() {
		It("TC-001 should return the created item", Label(smoke, positive), func() {
			payload := itemapi.ValidItemPayload(sellerID)

			response := create(payload)
			api.ExpectStatus(response, http.StatusOK)
			expectContract(response)

			item := api.ExpectItem(response)
			Expect(item.ID).NotTo(BeEmpty(), "Created item should have an id")
			api.ExpectItemMatches(item, payload)
			Expect(item.Has(itemapi.FieldCreatedAt)).To(BeTrue(), "Created item should have createdAt")
		})

		It("TC-001 should echo a known seller and name", Label(smoke, positive), func() {
			payload := itemapi.NewItemPayload(500000).WithName("Test").Build()

			before := time.Now()
			response := create(payload)
			after := time.Now()

			api.ExpectStatus(response, http.StatusOK)

			item := api.ExpectItem(response)
			Expect(item.ID).NotTo(BeEmpty())
			Expect(item.SellerID).To(Equal(int64(500000)))
			Expect(item.Name).To(Equal("Test"))
			Expect(item.Price).To(Equal(int64(1000)))
			api.ExpectCreatedAtWithin(item, before, after)
		})

		It("TC-002 should accept a zero price", Label(positive, boundary), func() {
			payload := itemapi.NewItemPayload(sellerID).WithName("Free item").WithPrice(0).Build()

			response := create(payload)
			api.ExpectStatus(response, http.StatusOK)

			Expect(api.ExpectItem(response).Price).To(BeZero())
		})

		It("TC-003 should accept the largest 32 bit price", Label(positive, boundary), func() {
			payload := itemapi.NewItemPayload(sellerID).WithName("Expensive item").WithPrice(math.MaxInt32).Build()

			response := create(payload)
			api.ExpectStatus(response, http.StatusOK)

			Expect(api.ExpectItem(response).Price).To(Equal(int64(math.MaxInt32)))
		})

		It("TC-004 should store a 1000 character name or reject it", Label(positive, boundary), func() {
			name := strings.Repeat("А", 1000)
			payload := itemapi.NewItemPayload(sellerID).WithName(name).WithPrice(500).Build()

			response := create(payload)

			// The length limit on names is undocumented, refusing is as valid as
			// storing it intact.
			api.ExpectOutcome(response, itemapi.Expect(http.StatusOK, http.StatusBadRequest))

			if response.StatusCode == http.StatusOK {
				Expect(api.ExpectItem(response).Name).To(Equal(name), "Long name should not be truncated")
			}
		})

		It("TC-005 should store special characters verbatim", Label(positive), func() {
			name := "Item #1 <test> & \"quotes\" 'apostrophe' @#$%"
			payload := itemapi.NewItemPayload(sellerID).WithName(name).WithPrice(1500).Build()

			response := create(payload)
			api.ExpectStatus(response, http.StatusOK)
			expectContract(response)

			Expect(api.ExpectItem(response).Name).To(Equal(name))
		})

		It("TC-006 should store non-zero statistics", Label(positive), func() {
			payload := itemapi.NewItemPayload(sellerID).WithPrice(2000).WithStatistics(100, 500, 25).Build()

			response := create(payload)
			api.ExpectStatus(response, http.StatusOK)
			expectContract(response)

			item := api.ExpectItem(response)

			stats, ok := item.Stats()
			Expect(ok).To(BeTrue(), "Created item should carry statistics")
			Expect(stats).To(Equal(payload.Statistics()))
		})
	})

	Context("When creating an item with statistics nested in an object", func() {
		It("should accept the payload", Label(positive), func() {
			payload := itemapi.NewItemPayload(sellerID).WithStatistics(1, 2, 3).BuildNested()

			response := create(payload)

			// The documented shape nests statistics but the provider only reads
			// them at the top level.
			api.ExpectOutcome(response, itemapi.Expect(http.StatusOK).Tolerating(http.StatusBadRequest, itemapi.DefectNestedStatistics))
		})
	})

	Context("When required fields are missing", func() {
		DescribeTable("it should reject the payload",
			func(field string) {
				payload := itemapi.NewItemPayload(sellerID).Without(field).BuildRaw()

				api.ExpectStatus(create(payload), http.StatusBadRequest)
			},
			Entry("TC-007 without a name", Label(negative), itemapi.FieldName),
			Entry("TC-008 without a price", Label(negative), itemapi.FieldPrice),
			Entry("TC-009 without a seller", Label(negative), itemapi.FieldSellerID),
			Entry("TC-010 without statistics", Label(negative), itemapi.FieldStatistics),
		)
	})

	Context("When fields have invalid values", func() {
		It("TC-011 should reject a negative price", Label(negative), func() {
			payload := itemapi.NewItemPayload(sellerID).WithPrice(-100).Build()

			api.ExpectStatus(create(payload), http.StatusBadRequest)
		})

		It("TC-012 should reject negative statistics", Label(negative), func() {
			payload := itemapi.NewItemPayload(sellerID).WithStatistics(-10, -5, -3).Build()

			response := create(payload)

			api.ExpectOutcome(response, itemapi.Expect(http.StatusBadRequest).Tolerating(http.StatusOK, itemapi.DefectNegativeStatistics))
		})

		It("TC-013 should reject a string price", Label(negative), func() {
			payload := itemapi.NewItemPayload(sellerID).Set(itemapi.FieldPrice, "one thousand").BuildRaw()

			api.ExpectStatus(create(payload), http.StatusBadRequest)
		})

		It("TC-014 should reject a string seller", Label(negative), func() {
			payload := itemapi.NewItemPayload(sellerID).Set(itemapi.FieldSellerID, "abc123").BuildRaw()

			api.ExpectStatus(create(payload), http.StatusBadRequest)
		})

		It("TC-015 should reject an empty name", Label(negative, boundary), func() {
			payload := itemapi.NewItemPayload(sellerID).WithName("").Build()

			api.ExpectStatus(create(payload), http.StatusBadRequest)
		})
	})

	Context("When the body is empty", func() {
		It("TC-016 should reject an empty object", Label(negative), func() {
			api.ExpectStatus(create(map[string]any{}), http.StatusBadRequest)
		})

		It("should reject a request with no body", Label(negative), func() {
			api.ExpectStatus(create(nil), http.StatusBadRequest)
		})

		It("should reject a body that isn't JSON", Label(negative), func() {
			api.ExpectStatus(create([]byte("sellerID=123456")), http.StatusBadRequest)
		})
	})
})
