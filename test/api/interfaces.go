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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package api

import (
	"context"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
)

// ItemClient is what fixtures need to manage item lifecycles.
type ItemClient interface {
	CreateItem(ctx context.Context, body any) (*itemapi.Response, error)
	DeleteItem(ctx context.Context, itemID string) (*itemapi.Response, error)
}
