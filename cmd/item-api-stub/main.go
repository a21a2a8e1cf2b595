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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/listing-qa/item-conformance/pkg/server"
)

func main() {
	s := &server.Server{}

	s.Options.AddFlags(pflag.CommandLine)

	jsonLogs := pflag.Bool("json-logs", false, "Log in JSON.")

	pflag.Parse()

	logger := logrus.New()

	if *jsonLogs {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Error responses are logged through the standard logger.
	logrus.SetFormatter(logger.Formatter)

	s.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
