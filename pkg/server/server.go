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

// Package server is an in-process implementation of the canonical item
// listing contract.  It backs offline runs of the conformance suite and the
// harness's own tests, and can reproduce catalogued provider defects.
package server

import (
	"context"
	goerrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/pkg/openapi"
	"github.com/listing-qa/item-conformance/pkg/server/errors"
	"github.com/listing-qa/item-conformance/pkg/server/handler"
	"github.com/listing-qa/item-conformance/pkg/server/middleware"
	"github.com/listing-qa/item-conformance/pkg/server/store"
)

var (
	// ErrSchemaMissing is raised when the contract lacks an expected schema.
	ErrSchemaMissing = goerrors.New("schema missing")
)

// Options configure the provider.
type Options struct {
	// ListenAddress is where a standalone server listens.
	ListenAddress string

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration

	// AcceptNegativeStatistics disables the minimum on counters, see
	// itemapi.DefectNegativeStatistics.
	AcceptNegativeStatistics bool

	// Handler options.
	Handler handler.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "API listener address.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", time.Second, "How long to wait for request headers.")
	f.BoolVar(&o.AcceptNegativeStatistics, "accept-negative-statistics", false, "Accept negative item statistics on create.")

	o.Handler.AddFlags(f)
}

// Defects returns the catalogued defects the options reproduce.
func (o *Options) Defects() []itemapi.KnownDefect {
	var defects []itemapi.KnownDefect

	if o.AcceptNegativeStatistics {
		defects = append(defects, itemapi.DefectNegativeStatistics)
	}

	if o.Handler.NotFoundAsBadRequest {
		defects = append(defects, itemapi.DefectNotFoundAsBadRequest)
	}

	return defects
}

// relaxCounters drops the lower bound of request counters.
func relaxCounters(doc *openapi3.T) error {
	if doc.Components == nil {
		return fmt.Errorf("%w: no components", ErrSchemaMissing)
	}

	schema, ok := doc.Components.Schemas["itemRequest"]
	if !ok || schema.Value == nil {
		return fmt.Errorf("%w: itemRequest", ErrSchemaMissing)
	}

	for _, field := range []string{itemapi.FieldLikes, itemapi.FieldViewCount, itemapi.FieldContacts} {
		if property, ok := schema.Value.Properties[field]; ok && property.Value != nil {
			property.Value.Min = nil
		}
	}

	return nil
}

// NewHandler builds the provider's HTTP handler around the given store.
func NewHandler(ctx context.Context, options *Options, items *store.Store, logger logrus.FieldLogger) (http.Handler, error) {
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}

	if options.AcceptNegativeStatistics {
		if err := relaxCounters(doc); err != nil {
			return nil, err
		}
	}

	validator, err := openapi.NewValidator(doc)
	if err != nil {
		return nil, err
	}

	h := handler.New(items, &options.Handler)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.Tracing(nil))
	router.Use(middleware.Logger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.OpenAPIValidator(validator))
	router.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.HandleError(w, r, errors.HTTPNotFound("resource not found"))
	}))
	router.MethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.HandleError(w, r, errors.HTTPMethodNotAllowed())
	}))

	router.Post("/api/1/item", h.PostApiV1Item)
	router.Get("/api/1/item/{id}", h.GetApiV1ItemID)
	router.Get("/api/1/{sellerID}/item", h.GetApiV1SellerIDItem)
	router.Get("/api/1/statistic/{id}", h.GetApiV1StatisticID)
	router.Delete("/api/2/item/{id}", h.DeleteApiV2ItemID)

	return router, nil
}

// Server is a standalone provider.
type Server struct {
	Options Options
	Logger  logrus.FieldLogger
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	h, err := NewHandler(ctx, &s.Options, store.New(), s.Logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		Handler:           h,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.Logger.WithError(err).Error("server shutdown failed")
		}
	}()

	s.Logger.WithFields(logrus.Fields{
		"address": s.Options.ListenAddress,
		"defects": s.Options.Defects(),
	}).Info("listening")

	if err := server.ListenAndServe(); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}

	return nil
}
