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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
	"github.com/listing-qa/item-conformance/pkg/probe"
)

type options struct {
	baseURL  string
	timeout  time.Duration
	logLevel string
	report   bool
	probe    probe.Options
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", itemapi.DefaultBaseURL, "Item listing API origin.")
	f.DurationVar(&o.timeout, "timeout", 10*time.Second, "Per request timeout.")
	f.StringVar(&o.logLevel, "log-level", "info", "Log level.")
	f.BoolVar(&o.report, "report", false, "Print a JSON report on stdout.")

	o.probe.AddFlags(f)
}

func run(ctx context.Context, o *options, logger *logrus.Logger) (*probe.Report, error) {
	client, err := itemapi.New(itemapi.Options{
		BaseURL: o.baseURL,
		Timeout: o.timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logger.WithError(err).Warn("closing client")
		}
	}()

	report, err := probe.New(client, logger).Run(ctx, o.probe.Request())
	if err != nil {
		return nil, err
	}

	report.BaseURL = client.BaseURL()

	return report, nil
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := run(ctx, &o, logger)
	if err != nil {
		logger.WithError(err).Error("probe failed")
		os.Exit(1)
	}

	if o.report {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(report); err != nil {
			logger.WithError(err).Error("writing report")
			os.Exit(1)
		}
	}

	if !report.Passed() {
		os.Exit(2)
	}
}
