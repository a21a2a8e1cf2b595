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
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/pkg/openapi"
)

// CreatedAtSlack is how far createdAt may stray outside the request window.
const CreatedAtSlack = time.Minute

// ExpectOutcome checks a response status against an outcome.  A status only
// tolerated because of a known defect skips the spec with a report entry.
func ExpectOutcome(response *itemapi.Response, outcome itemapi.Outcome) {
	verdict, defect := outcome.Classify(response.StatusCode)

	if verdict == itemapi.VerdictKnownDefect {
		AddReportEntry("known defect", fmt.Sprintf("%s\n%s", defect, response))
		Skip(fmt.Sprintf("%s: status %d, %s", defect.ID, response.StatusCode, defect.Description))
	}

	ExpectWithOffset(1, response.StatusCode).To(BeElementOf(outcome.Accepted), "Expected status in %s\n%s", outcome, response)
}

// ExpectStatus checks for exactly one status.
func ExpectStatus(response *itemapi.Response, status int) {
	ExpectWithOffset(1, response.StatusCode).To(Equal(status), "Unexpected status\n%s", response)
}

// ExpectNoReflection checks the response body doesn't contain the needle in
// any case, e.g. markup sent in a path.
func ExpectNoReflection(response *itemapi.Response, needle string) {
	ExpectWithOffset(1, strings.ToLower(string(response.Body))).NotTo(ContainSubstring(strings.ToLower(needle)), "Request input reflected in response\n%s", response)
}

// ExpectItem decodes an item, failing the spec if that isn't possible.
func ExpectItem(response *itemapi.Response) *itemapi.Item {
	item, err := itemapi.DecodeItem(response.Body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "%s", response)

	return item
}

// ExpectItems decodes a seller listing, failing the spec if it isn't an array.
func ExpectItems(response *itemapi.Response) []itemapi.Item {
	items, err := itemapi.DecodeItems(response.Body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "%s", response)

	return items
}

// ExpectStatistics decodes item statistics.
func ExpectStatistics(response *itemapi.Response) *itemapi.Statistics {
	stats, err := itemapi.DecodeStatistics(response.Body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "%s", response)

	return stats
}

// ExpectItemFields checks that an item has every field a complete item
// carries, in either statistics shape.
func ExpectItemFields(item *itemapi.Item) {
	for _, field := range []string{itemapi.FieldID, itemapi.FieldItemSellerID, itemapi.FieldName, itemapi.FieldPrice, itemapi.FieldCreatedAt} {
		ExpectWithOffset(1, item.Has(field)).To(BeTrue(), "Item %s is missing field %q", item.ID, field)
	}

	_, ok := item.Stats()
	ExpectWithOffset(1, ok).To(BeTrue(), "Item %s has no statistics", item.ID)
}

// ExpectItemMatches checks an item against the payload that created it.
func ExpectItemMatches(item *itemapi.Item, request itemapi.ItemRequest) {
	ExpectWithOffset(1, item.SellerID).To(Equal(request.SellerID), "sellerId mismatch")
	ExpectWithOffset(1, item.Name).To(Equal(request.Name), "name mismatch")
	ExpectWithOffset(1, item.Price).To(Equal(request.Price), "price mismatch")
}

// ExpectCreatedAtWithin checks createdAt parses and lies within the window the
// request was made in, give or take CreatedAtSlack.
func ExpectCreatedAtWithin(item *itemapi.Item, before, after time.Time) {
	ExpectWithOffset(1, item.CreatedAt).NotTo(BeEmpty(), "createdAt is empty")

	createdAt, err := itemapi.ParseCreatedAt(item.CreatedAt)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	ExpectWithOffset(1, itemapi.WithinWindow(createdAt, before, after, CreatedAtSlack)).To(BeTrue(),
		"createdAt %s outside [%s, %s] +/- %s", createdAt, before, after, CreatedAtSlack)
}

//nolint:gochecknoglobals
var (
	contract     *openapi.Validator
	contractErr  error
	contractOnce sync.Once
)

// ExpectContract validates a successful response against the canonical
// contract.  Other responses are ignored, their bodies are not contractual.
func ExpectContract(ctx context.Context, response *itemapi.Response) {
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return
	}

	contractOnce.Do(func() {
		contract, contractErr = openapi.NewDefaultValidator(context.Background())
	})

	ExpectWithOffset(1, contractErr).NotTo(HaveOccurred())

	err := contract.ValidateResponse(ctx, response.Method, response.Path, response.StatusCode, response.Header, response.Body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "%s", response)
}
