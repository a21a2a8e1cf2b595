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
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// SellerIDMin is the smallest seller id the provider accepts.
	SellerIDMin int64 = 111111

	// SellerIDMax is the largest seller id the provider accepts.
	SellerIDMax int64 = 999999

	// sellerIDSpan is the size of the range used by unique ids.  It stops one
	// short of SellerIDMax, which is harmless.
	sellerIDSpan int64 = 888888

	// uniqueTimeWindow bounds the millisecond clock component.
	uniqueTimeWindow int64 = 800000

	// uniqueRandomSpread bounds the random component.
	uniqueRandomSpread int64 = 88888
)

// SellerIDGenerator produces seller ids in [SellerIDMin, SellerIDMax].
type SellerIDGenerator struct {
	lock   sync.Mutex
	now    func() time.Time
	random *rand.Rand
}

// NewSellerIDGenerator returns a generator seeded from the runtime's entropy.
func NewSellerIDGenerator() *SellerIDGenerator {
	return NewSellerIDGeneratorWithSource(time.Now, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSellerIDGeneratorWithSource gives full control over the clock and random
// source, for reproducible ids.
func NewSellerIDGeneratorWithSource(now func() time.Time, source rand.Source) *SellerIDGenerator {
	return &SellerIDGenerator{
		now:    now,
		random: rand.New(source),
	}
}

// Unique returns a seller id that is very likely unused.  It combines the
// wall clock, in milliseconds and folded into a window, with a random offset.
// Two calls in the same millisecond only collide if the random parts do too.
func (g *SellerIDGenerator) Unique() int64 {
	g.lock.Lock()
	defer g.lock.Unlock()

	timestamp := g.now().UnixMilli() % uniqueTimeWindow
	offset := g.random.Int64N(uniqueRandomSpread + 1)

	return SellerIDMin + (timestamp+offset)%sellerIDSpan
}

// Random returns a uniformly distributed seller id, for when uniqueness
// doesn't matter.
func (g *SellerIDGenerator) Random() int64 {
	g.lock.Lock()
	defer g.lock.Unlock()

	return SellerIDMin + g.random.Int64N(SellerIDMax-SellerIDMin+1)
}

// OffsetSellerID shifts a seller id by delta, wrapping around so the result
// stays inside the accepted range.
func OffsetSellerID(sellerID, delta int64) int64 {
	size := SellerIDMax - SellerIDMin + 1

	offset := (sellerID - SellerIDMin + delta) % size
	if offset < 0 {
		offset += size
	}

	return SellerIDMin + offset
}

//nolint:gochecknoglobals
var defaultSellerIDs = NewSellerIDGenerator()

// UniqueSellerID returns a likely unused seller id from the default generator.
func UniqueSellerID() int64 {
	return defaultSellerIDs.Unique()
}

// RandomSellerID returns a random seller id from the default generator.
func RandomSellerID() int64 {
	return defaultSellerIDs.Random()
}
