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

package api

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/sirupsen/logrus"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/pkg/server"
	"github.com/listing-qa/item-conformance/pkg/server/store"
)

// NewLogger returns a logger that writes through GinkgoWriter, so output is
// only shown for failed specs unless running verbosely.
func NewLogger(config *TestConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ginkgo.GinkgoWriter)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	if config.DebugLogging {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// NewAPIClient builds the client shared by every spec in the run.  It must be
// called from a setup node as cleanup is registered with Ginkgo.
func NewAPIClient(config *TestConfig, logger logrus.FieldLogger) (*itemapi.Client, error) {
	options := itemapi.Options{
		BaseURL:      config.BaseURL,
		Timeout:      config.RequestTimeout,
		Logger:       logger,
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	}

	if config.TraceStdout {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(ginkgo.GinkgoWriter), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("creating trace exporter: %w", err)
		}

		provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

		ginkgo.DeferCleanup(func() {
			if err := provider.Shutdown(context.Background()); err != nil {
				ginkgo.GinkgoWriter.Printf("Warning: Failed to shut down tracer provider: %v\n", err)
			}
		})

		options.TracerProvider = provider
	}

	client, err := itemapi.New(options)
	if err != nil {
		return nil, err
	}

	ginkgo.DeferCleanup(func() {
		if err := client.Close(context.Background()); err != nil {
			ginkgo.GinkgoWriter.Printf("Warning: Failed to close client: %v\n", err)
		}
	})

	return client, nil
}

// StartStubServer starts the in-process provider and returns its origin.  It
// is stopped when the calling node's cleanup runs.
func StartStubServer(ctx context.Context, options *server.Options, logger logrus.FieldLogger) (string, error) {
	handler, err := server.NewHandler(ctx, options, store.New(), logger)
	if err != nil {
		return "", err
	}

	stub := httptest.NewServer(handler)

	ginkgo.DeferCleanup(stub.Close)

	ginkgo.GinkgoWriter.Printf("Started stub provider at %s\n", stub.URL)

	return stub.URL, nil
}
