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
	"maps"
	"slices"
)

// KnownDefect is a catalogued divergence between the documented and observed
// provider behaviour.
type KnownDefect struct {
	ID          string
	Description string
}

func (d KnownDefect) String() string {
	return d.ID + ": " + d.Description
}

//nolint:gochecknoglobals
var (
	// DefectNestedStatistics: the API collection documents statistics as a
	// nested object on create, the provider only accepts them flattened.
	DefectNestedStatistics = KnownDefect{
		ID:          "BUG-001",
		Description: "create rejects the documented nested statistics shape",
	}

	// DefectNegativeStatistics: negative counters are accepted on create.
	DefectNegativeStatistics = KnownDefect{
		ID:          "BUG-002",
		Description: "create accepts negative statistics",
	}

	// DefectNotFoundAsBadRequest: some unknown ids are reported as 400 rather
	// than 404.
	DefectNotFoundAsBadRequest = KnownDefect{
		ID:          "BUG-003",
		Description: "lookup of an unknown id returns 400 instead of 404",
	}
)

// Verdict is the classification of a status against an Outcome.
type Verdict int

const (
	VerdictRejected Verdict = iota
	VerdictAccepted
	VerdictKnownDefect
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "accepted"
	case VerdictKnownDefect:
		return "known defect"
	case VerdictRejected:
		return "rejected"
	}

	return fmt.Sprintf("verdict(%d)", int(v))
}

// Outcome enumerates the status codes a test accepts, and the ones it
// tolerates because of a known defect.
type Outcome struct {
	Accepted  []int
	Tolerated map[int]KnownDefect
}

// Expect returns an outcome accepting exactly the given statuses.
func Expect(statuses ...int) Outcome {
	return Outcome{
		Accepted: statuses,
	}
}

// Tolerating returns a copy of the outcome that also tolerates a status
// because of the given defect.
func (o Outcome) Tolerating(status int, defect KnownDefect) Outcome {
	tolerated := make(map[int]KnownDefect, len(o.Tolerated)+1)
	maps.Copy(tolerated, o.Tolerated)
	tolerated[status] = defect

	return Outcome{
		Accepted:  slices.Clone(o.Accepted),
		Tolerated: tolerated,
	}
}

// Classify decides what a status means for this outcome.  Accepted wins over
// tolerated.
func (o Outcome) Classify(status int) (Verdict, *KnownDefect) {
	if slices.Contains(o.Accepted, status) {
		return VerdictAccepted, nil
	}

	if defect, ok := o.Tolerated[status]; ok {
		return VerdictKnownDefect, &defect
	}

	return VerdictRejected, nil
}

func (o Outcome) String() string {
	s := fmt.Sprintf("%v", o.Accepted)

	for _, status := range slices.Sorted(maps.Keys(o.Tolerated)) {
		s += fmt.Sprintf(" (tolerating %d: %s)", status, o.Tolerated[status].ID)
	}

	return s
}
