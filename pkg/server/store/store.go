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

// Package store is an in-memory item store.
package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
)

var (
	// ErrNotFound is returned when an item doesn't exist.
	ErrNotFound = errors.New("item not found")
)

// Item is a stored item.
type Item struct {
	ID         string
	SellerID   int64
	Name       string
	Price      int64
	Statistics itemapi.Statistics
	CreatedAt  time.Time
}

// Store holds items in memory, indexed by id and seller.
type Store struct {
	lock     sync.RWMutex
	items    map[string]Item
	bySeller map[int64][]string
	now      func() time.Time
}

// New creates an empty store.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty store with a custom creation time source.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		items:    map[string]Item{},
		bySeller: map[int64][]string{},
		now:      now,
	}
}

// Create stores a new item and returns it.
func (s *Store) Create(request itemapi.ItemRequest) Item {
	item := Item{
		ID:         uuid.NewString(),
		SellerID:   request.SellerID,
		Name:       request.Name,
		Price:      request.Price,
		Statistics: request.Statistics(),
		CreatedAt:  s.now(),
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.items[item.ID] = item
	s.bySeller[item.SellerID] = append(s.bySeller[item.SellerID], item.ID)

	return item
}

// Get returns an item by id.
func (s *Store) Get(id string) (Item, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}

	return item, nil
}

// ListBySeller returns a seller's items in creation order.
func (s *Store) ListBySeller(sellerID int64) []Item {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := s.bySeller[sellerID]

	items := make([]Item, 0, len(ids))

	for _, id := range ids {
		items = append(items, s.items[id])
	}

	return items
}

// Delete removes an item.
func (s *Store) Delete(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	item, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.items, id)

	ids := slices.DeleteFunc(s.bySeller[item.SellerID], func(x string) bool {
		return x == id
	})

	if len(ids) == 0 {
		delete(s.bySeller, item.SellerID)
	} else {
		s.bySeller[item.SellerID] = ids
	}

	return nil
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.items)
}
