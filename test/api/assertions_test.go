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
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
)

func jsonResponse(method, path string, status int, body string) *itemapi.Response {
	return &itemapi.Response{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Header: http.Header{
			"Content-Type": []string{"application/json"},
		},
		Body: []byte(body),
	}
}

const (
	nestedItem    = `{"id":"abc","sellerId":123456,"name":"Test item","price":1000,"statistics":{"likes":1,"viewCount":2,"contacts":3},"createdAt":"2026-10-17 10:00:00.123456 +0000 UTC"}`
	flattenedItem = `{"id":"abc","sellerId":123456,"name":"Test item","price":1000,"likes":1,"viewCount":2,"contacts":3,"createdAt":"2026-10-17T10:00:00Z"}`
)

var _ = Describe("Assertions", func() {
	Context("When checking an outcome", func() {
		It("should pass on an accepted status", func() {
			ExpectOutcome(jsonResponse(http.MethodGet, "/", http.StatusNotFound, "{}"), itemapi.Expect(http.StatusBadRequest, http.StatusNotFound))
		})

		It("should fail on any other status", func() {
			failure := InterceptGomegaFailure(func() {
				ExpectOutcome(jsonResponse(http.MethodGet, "/", http.StatusOK, "{}"), itemapi.Expect(http.StatusNotFound).Tolerating(http.StatusBadRequest, itemapi.DefectNotFoundAsBadRequest))
			})
			Expect(failure).To(HaveOccurred())
		})
	})

	Context("When checking for reflected input", func() {
		It("should ignore case", func() {
			response := jsonResponse(http.MethodGet, "/", http.StatusNotFound, `{"message":"<SCRIPT> not found"}`)

			Expect(InterceptGomegaFailure(func() {
				ExpectNoReflection(response, "<script>")
			})).To(HaveOccurred())
		})

		It("should pass when the input is absent", func() {
			ExpectNoReflection(jsonResponse(http.MethodGet, "/", http.StatusNotFound, `{"message":"item not found"}`), "<script>")
		})
	})

	Context("When checking item fields", func() {
		DescribeTable("it should accept either statistics shape",
			func(body string) {
				item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, body))

				ExpectItemFields(item)
				ExpectItemMatches(item, itemapi.ValidItemPayload(123456))
			},
			Entry("nested", nestedItem),
			Entry("flattened", flattenedItem),
			Entry("as a singleton array", "["+nestedItem+"]"),
		)

		It("should fail when createdAt is missing", func() {
			item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, `{"id":"abc","sellerId":123456,"name":"x","price":1,"statistics":{"likes":0,"viewCount":0,"contacts":0}}`))

			Expect(InterceptGomegaFailure(func() {
				ExpectItemFields(item)
			})).To(MatchError(ContainSubstring("createdAt")))
		})

		It("should fail when statistics are missing", func() {
			item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, `{"id":"abc","sellerId":123456,"name":"x","price":1,"createdAt":"now"}`))

			Expect(InterceptGomegaFailure(func() {
				ExpectItemFields(item)
			})).To(MatchError(ContainSubstring("no statistics")))
		})

		It("should fail on a mismatched price", func() {
			item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, nestedItem))

			Expect(InterceptGomegaFailure(func() {
				ExpectItemMatches(item, itemapi.NewItemPayload(123456).WithPrice(1).Build())
			})).To(MatchError(ContainSubstring("price mismatch")))
		})
	})

	Context("When checking createdAt", func() {
		created := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

		It("should accept a time inside the window", func() {
			item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, flattenedItem))

			ExpectCreatedAtWithin(item, created.Add(-time.Second), created.Add(time.Second))
		})

		It("should accept clock skew within the slack", func() {
			item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, flattenedItem))

			ExpectCreatedAtWithin(item, created.Add(30*time.Second), created.Add(31*time.Second))
		})

		It("should reject a time well outside the window", func() {
			item := ExpectItem(jsonResponse(http.MethodGet, "/", http.StatusOK, flattenedItem))

			Expect(InterceptGomegaFailure(func() {
				ExpectCreatedAtWithin(item, created.Add(time.Hour), created.Add(time.Hour+time.Second))
			})).To(HaveOccurred())
		})
	})

	Context("When validating responses against the contract", func() {
		It("should accept a conforming item", func() {
			ExpectContract(context.Background(), jsonResponse(http.MethodPost, "/api/1/item", http.StatusOK, nestedItem))
		})

		It("should accept a conforming seller listing", func() {
			ExpectContract(context.Background(), jsonResponse(http.MethodGet, "/api/1/123456/item", http.StatusOK, "["+flattenedItem+"]"))
		})

		It("should reject an item without an id", func() {
			response := jsonResponse(http.MethodGet, "/api/1/item/abc", http.StatusOK, `[{"sellerId":123456,"name":"x","price":1,"createdAt":"now"}]`)

			Expect(InterceptGomegaFailure(func() {
				ExpectContract(context.Background(), response)
			})).To(HaveOccurred())
		})

		It("should ignore error responses", func() {
			ExpectContract(context.Background(), jsonResponse(http.MethodGet, "/api/1/item/abc", http.StatusNotFound, "not json"))
		})
	})
})
