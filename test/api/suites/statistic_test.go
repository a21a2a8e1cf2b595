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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/test/api"
)

var _ = Describe("Get Statistic", func() {
	Context("When retrieving item statistics", func() {
		Describe("Given the item exists", func() {
			It("TC-027 should return the counters the item was created with", Label(smoke, positive), func() {
				payload := itemapi.NewItemPayload(itemapi.UniqueSellerID()).
					WithName("Item with statistics").
					WithPrice(1500).
					WithStatistics(5, 10, 2).
					Build()

				created := api.CreateItemWithCleanup(client, ctx, payload)

				response, err := client.GetStatistic(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(response, http.StatusOK)
				expectContract(response)

				Expect(*api.ExpectStatistics(response)).To(Equal(payload.Statistics()))
			})
		})

		Describe("Given the item does not exist", func() {
			It("TC-028 should return not found", Label(negative), func() {
				response, err := client.GetStatistic(ctx, "nonexistent-id-99999")
				Expect(err).NotTo(HaveOccurred())

				api.ExpectOutcome(response, itemapi.Expect(http.StatusNotFound).Tolerating(http.StatusBadRequest, itemapi.DefectNotFoundAsBadRequest))
			})
		})

		Describe("Given a malformed id", func() {
			It("TC-029 should reject punctuation", Label(negative), func() {
				response, err := client.GetStatistic(ctx, "!@#$%^&*()")
				Expect(err).NotTo(HaveOccurred())

				api.ExpectOutcome(response, itemapi.Expect(http.StatusBadRequest, http.StatusNotFound))
			})

			It("TC-030 should reject an empty id", Label(negative, boundary), func() {
				response, err := client.GetStatistic(ctx, "")
				Expect(err).NotTo(HaveOccurred())

				api.ExpectOutcome(response, itemapi.Expect(http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed))
			})
		})
	})
})
