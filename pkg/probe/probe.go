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

// Package probe runs a single item lifecycle against a provider and reports
// on each step.  It's a quick health check, the conformance suite is the
// thorough one.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/listing-qa/item-conformance/pkg/itemapi"
)

var (
	// ErrStepFailed is raised when a lifecycle step doesn't behave.
	ErrStepFailed = errors.New("step failed")
)

// Options define the item the probe creates.
type Options struct {
	SellerID  int64
	Name      string
	Price     int64
	Likes     int64
	ViewCount int64
	Contacts  int64
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.Int64Var(&o.SellerID, "seller-id", 0, "Seller to create the item for, 0 picks an unused one.")
	f.StringVar(&o.Name, "name", itemapi.DefaultItemName, "Item name.")
	f.Int64Var(&o.Price, "price", itemapi.DefaultItemPrice, "Item price.")
	f.Int64Var(&o.Likes, "likes", 0, "Initial likes.")
	f.Int64Var(&o.ViewCount, "view-count", 0, "Initial view count.")
	f.Int64Var(&o.Contacts, "contacts", 0, "Initial contacts.")
}

// Request builds the create payload the options describe.
func (o *Options) Request() itemapi.ItemRequest {
	sellerID := o.SellerID
	if sellerID == 0 {
		sellerID = itemapi.UniqueSellerID()
	}

	return itemapi.NewItemPayload(sellerID).
		WithName(o.Name).
		WithPrice(o.Price).
		WithStatistics(o.Likes, o.ViewCount, o.Contacts).
		Build()
}

// Step is the result of one request.
type Step struct {
	Name       string        `json:"name"`
	StatusCode int           `json:"statusCode,omitempty"`
	Duration   time.Duration `json:"duration"`
	TraceID    string        `json:"traceId,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// Passed reports whether the step succeeded.
func (s *Step) Passed() bool {
	return s.Error == ""
}

// Report is the outcome of a probe run.
type Report struct {
	BaseURL string `json:"baseURL"`
	ItemID  string `json:"itemId,omitempty"`
	Steps   []Step `json:"steps"`
}

// Passed reports whether every step succeeded.
func (r *Report) Passed() bool {
	return !slices.ContainsFunc(r.Steps, func(s Step) bool {
		return !s.Passed()
	})
}

// Probe runs the lifecycle.
type Probe struct {
	client Client
	logger logrus.FieldLogger
}

// New creates a probe.
func New(client Client, logger logrus.FieldLogger) *Probe {
	return &Probe{
		client: client,
		logger: logger,
	}
}

type stepFunc func(ctx context.Context) (*itemapi.Response, error)

// step runs one request and records the outcome.  A step fails if the
// request errors, returns an unaccepted status or its check fails.
func (p *Probe) step(ctx context.Context, report *Report, name string, outcome itemapi.Outcome, do stepFunc, check func(*itemapi.Response) error) bool {
	result := Step{
		Name: name,
	}

	defer func() {
		report.Steps = append(report.Steps, result)

		log := p.logger.WithFields(logrus.Fields{
			"step":     name,
			"status":   result.StatusCode,
			"duration": result.Duration,
			"trace_id": result.TraceID,
		})

		if result.Passed() {
			log.Info("step passed")
		} else {
			log.WithField("error", result.Error).Error("step failed")
		}
	}()

	response, err := do(ctx)
	if err != nil {
		result.Error = err.Error()
		return false
	}

	result.StatusCode = response.StatusCode
	result.Duration = response.Duration
	result.TraceID = response.TraceID

	verdict, defect := outcome.Classify(response.StatusCode)

	switch verdict {
	case itemapi.VerdictRejected:
		result.Error = fmt.Errorf("%w: status %d not in %v", ErrStepFailed, response.StatusCode, outcome).Error()
		return false
	case itemapi.VerdictKnownDefect:
		p.logger.WithField("step", name).Warnf("known defect %s", defect)
	case itemapi.VerdictAccepted:
	}

	if check != nil {
		if err := check(response); err != nil {
			result.Error = err.Error()
			return false
		}
	}

	return true
}

// Run executes the lifecycle, create, read, list, statistics, delete and
// read again.  The item is deleted even when intermediate steps fail.
//
//nolint:cyclop,funlen
func (p *Probe) Run(ctx context.Context, request itemapi.ItemRequest) (*Report, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	report := &Report{}

	var created *itemapi.Item

	ok := p.step(ctx, report, "create", itemapi.Expect(http.StatusOK),
		func(ctx context.Context) (*itemapi.Response, error) {
			return p.client.CreateItem(ctx, request)
		},
		func(response *itemapi.Response) error {
			item, err := itemapi.DecodeItem(response.Body)
			if err != nil {
				return err
			}

			if item.ID == "" {
				return fmt.Errorf("%w: created item has no id", ErrStepFailed)
			}

			created = item

			return nil
		})

	if !ok {
		return report, nil
	}

	report.ItemID = created.ID

	p.step(ctx, report, "get", itemapi.Expect(http.StatusOK),
		func(ctx context.Context) (*itemapi.Response, error) {
			return p.client.GetItem(ctx, created.ID)
		},
		func(response *itemapi.Response) error {
			item, err := itemapi.DecodeItem(response.Body)
			if err != nil {
				return err
			}

			if item.ID != created.ID || item.SellerID != request.SellerID || item.Name != request.Name || item.Price != request.Price {
				return fmt.Errorf("%w: item %+v does not match request %+v", ErrStepFailed, *item, request)
			}

			return nil
		})

	p.step(ctx, report, "list", itemapi.Expect(http.StatusOK),
		func(ctx context.Context) (*itemapi.Response, error) {
			return p.client.GetSellerItems(ctx, request.SellerID)
		},
		func(response *itemapi.Response) error {
			items, err := itemapi.DecodeItems(response.Body)
			if err != nil {
				return err
			}

			missing := set.New[string](created.ID).Difference(set.New[string](itemapi.ItemIDs(items)...))

			if ids := slices.Collect(missing.All()); len(ids) != 0 {
				return fmt.Errorf("%w: seller listing is missing %v", ErrStepFailed, ids)
			}

			return nil
		})

	p.step(ctx, report, "statistic", itemapi.Expect(http.StatusOK),
		func(ctx context.Context) (*itemapi.Response, error) {
			return p.client.GetStatistic(ctx, created.ID)
		},
		func(response *itemapi.Response) error {
			stats, err := itemapi.DecodeStatistics(response.Body)
			if err != nil {
				return err
			}

			if *stats != request.Statistics() {
				return fmt.Errorf("%w: statistics %+v do not match %+v", ErrStepFailed, *stats, request.Statistics())
			}

			return nil
		})

	if !p.step(ctx, report, "delete", itemapi.Expect(http.StatusOK),
		func(ctx context.Context) (*itemapi.Response, error) {
			return p.client.DeleteItem(ctx, created.ID)
		}, nil) {
		return report, nil
	}

	p.step(ctx, report, "get-deleted", itemapi.Expect(http.StatusNotFound).Tolerating(http.StatusBadRequest, itemapi.DefectNotFoundAsBadRequest),
		func(ctx context.Context) (*itemapi.Response, error) {
			return p.client.GetItem(ctx, created.ID)
		}, nil)

	return report, nil
}
