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
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseCreatedAt parses an item's createdAt value.  The provider does not
// document a format and has been seen emitting both RFC 3339 and Go's default
// time.Time formatting (e.g. "2024-02-26 12:28:41.355495 +0300 +0300"), so
// anything dateparse understands is accepted.  Values without a zone are UTC.
func ParseCreatedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: createdAt is empty", ErrUnexpectedShape)
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	// Strip the monotonic clock reading Go appends to time.Time.String().
	if i := strings.Index(value, " m="); i >= 0 {
		value = value[:i]
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing createdAt %q: %w", value, err)
	}

	return t, nil
}

// WithinWindow reports whether t lies in [before-slack, after+slack].
func WithinWindow(t, before, after time.Time, slack time.Duration) bool {
	return !t.Before(before.Add(-slack)) && !t.After(after.Add(slack))
}
