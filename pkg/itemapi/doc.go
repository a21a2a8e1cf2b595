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

// Package itemapi is a black-box client for the item listing API.
//
// # Separate Client Implementation
//
// The client deliberately hands back raw responses (status, headers and body)
// rather than typed results.  Conformance tests need to see exactly what the
// provider answered, including the answers it should not have given, so
// interpretation is left to the caller.  Decoding helpers are provided for the
// shapes the provider is known to use, e.g. a single object or a single element
// array for the same endpoint.
//
// # Wire Format
//
// Item creation uses the flattened shape, where likes, viewCount and contacts
// sit next to the name and price.  The nested shape, with those counters under a
// statistics object, is what the published collection documents, but it is not
// what the provider accepts.  It is kept as NestedItemRequest so the divergence
// can be exercised, and is catalogued as DefectNestedStatistics.
//
// # Seller Identifiers
//
// The provider has no seller entity, a seller is just an integer in the range
// [SellerIDMin, SellerIDMax].  Isolation between tests is achieved by picking a
// seller that is very likely unused.  This is probabilistic: two processes can
// still collide, they just rarely do.
package itemapi
