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

//nolint:revive
package handler

import (
	goerrors "errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/pkg/openapi"
	"github.com/listing-qa/item-conformance/pkg/server/errors"
	"github.com/listing-qa/item-conformance/pkg/server/store"
	"github.com/listing-qa/item-conformance/pkg/server/util"
)

// createdAtLayout is how the provider renders creation times, Go's default
// time formatting.
const createdAtLayout = "2006-01-02 15:04:05.999999999 -0700 MST"

type Handler struct {
	// store holds all items.
	store *store.Store

	// options allows behaviour to be defined on the CLI.
	options *Options
}

func New(store *store.Store, options *Options) *Handler {
	return &Handler{
		store:   store,
		options: options,
	}
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// pathParameter returns an unescaped path parameter.  The router matches on
// the raw path when one is set, so parameters may still be escaped.
func pathParameter(r *http.Request, name string) (string, error) {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", errors.HTTPBadRequest("malformed path parameter").WithError(err)
	}

	return value, nil
}

func (h *Handler) convert(in *store.Item) *itemapi.Item {
	out := &itemapi.Item{
		ID:        in.ID,
		SellerID:  in.SellerID,
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: in.CreatedAt.UTC().Format(createdAtLayout),
	}

	if h.options.FlattenStatistics {
		out.Likes = &in.Statistics.Likes
		out.ViewCount = &in.Statistics.ViewCount
		out.Contacts = &in.Statistics.Contacts
	} else {
		stats := in.Statistics
		out.Statistics = &stats
	}

	return out
}

func (h *Handler) convertList(in []store.Item) []itemapi.Item {
	out := make([]itemapi.Item, len(in))

	for i := range in {
		out[i] = *h.convert(&in[i])
	}

	return out
}

// single wraps a single resource the way reads return it.
func (h *Handler) single(v any) any {
	if h.options.BareReads {
		return v
	}

	return []any{v}
}

// lookup reads an item, mapping absence to the configured error.
func (h *Handler) lookup(r *http.Request) (*store.Item, error) {
	id, err := pathParameter(r, "id")
	if err != nil {
		return nil, err
	}

	item, err := h.store.Get(id)
	if err != nil {
		if goerrors.Is(err, store.ErrNotFound) {
			if h.options.NotFoundAsBadRequest {
				return nil, errors.HTTPBadRequest("item not found").WithError(err)
			}

			return nil, errors.HTTPNotFound("item not found").WithError(err)
		}

		return nil, errors.ServerError("unable to read item").WithError(err)
	}

	return &item, nil
}

func (h *Handler) PostApiV1Item(w http.ResponseWriter, r *http.Request) {
	request := &itemapi.ItemRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("malformed request body").WithError(err))
		return
	}

	item := h.store.Create(*request)

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.convert(&item))
}

func (h *Handler) GetApiV1ItemID(w http.ResponseWriter, r *http.Request) {
	item, err := h.lookup(r)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.single(h.convert(item)))
}

func (h *Handler) GetApiV1SellerIDItem(w http.ResponseWriter, r *http.Request) {
	raw, err := pathParameter(r, "sellerID")
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	var sellerID openapi.SellerID

	if err := sellerID.UnmarshalText([]byte(raw)); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("seller id must be an integer").WithError(err))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.convertList(h.store.ListBySeller(sellerID.Value)))
}

func (h *Handler) GetApiV1StatisticID(w http.ResponseWriter, r *http.Request) {
	item, err := h.lookup(r)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.single(item.Statistics))
}

func (h *Handler) DeleteApiV2ItemID(w http.ResponseWriter, r *http.Request) {
	id, err := pathParameter(r, "id")
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.store.Delete(id); err != nil {
		if goerrors.Is(err, store.ErrNotFound) {
			errors.HandleError(w, r, errors.HTTPNotFound("item not found").WithError(err))
			return
		}

		errors.HandleError(w, r, errors.ServerError("unable to delete item").WithError(err))

		return
	}

	w.WriteHeader(http.StatusOK)
}
