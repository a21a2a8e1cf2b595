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

package openapi

import (
	"errors"
	"regexp"
	"strconv"
)

var ErrInvalidSellerID = errors.New("invalid seller ID: must be a decimal integer")

var sellerIDValidationRegex = regexp.MustCompile("^-?[0-9]{1,18}$")

// SellerID is a seller path segment.  Any decimal integer is syntactically
// valid, range checks are the caller's concern.
type SellerID struct {
	Value int64
}

func (n *SellerID) UnmarshalText(text []byte) error {
	if !sellerIDValidationRegex.Match(text) {
		return ErrInvalidSellerID
	}

	value, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return errors.Join(ErrInvalidSellerID, err)
	}

	*n = SellerID{
		Value: value,
	}

	return nil
}
