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

package handler

import (
	"github.com/spf13/pflag"
)

// Options control provider quirks the handler reproduces.
type Options struct {
	// FlattenStatistics returns counters at the top level of items rather
	// than in a statistics object.
	FlattenStatistics bool

	// BareReads returns reads of a single item as an object, rather than a
	// single element array.
	BareReads bool

	// NotFoundAsBadRequest reports unknown ids on reads with a 400.
	NotFoundAsBadRequest bool
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.BoolVar(&o.FlattenStatistics, "flatten-statistics", false, "Return item statistics flattened.")
	f.BoolVar(&o.BareReads, "bare-reads", false, "Return single item reads as an object rather than an array.")
	f.BoolVar(&o.NotFoundAsBadRequest, "not-found-as-bad-request", false, "Report unknown ids on reads as 400.")
}
