// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/l3montree-dev/fixflow/config"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/shared"
)

type DaemonRunner struct {
	approvalService shared.ApprovalService
	interval        time.Duration
	gracePeriod     time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDaemonRunner(approvalService shared.ApprovalService, cfg config.EscalationConfig) *DaemonRunner {
	return &DaemonRunner{
		approvalService: approvalService,
		interval:        cfg.Interval,
		gracePeriod:     cfg.GracePeriod,
	}
}

// Start runs the escalation sweep once and then on every interval until Stop is called.
func (runner *DaemonRunner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel

	runner.wg.Add(1)
	go func() {
		defer runner.wg.Done()
		runner.tick(ctx)
		ticker := time.NewTicker(runner.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	}()
}

// Stop cancels a running sweep and waits for the loop to exit.
func (runner *DaemonRunner) Stop() {
	if runner.cancel == nil {
		return
	}
	runner.cancel()
	runner.wg.Wait()
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("escalation daemon panicked", r)
		}
	}()
	if err := runner.EscalateFailedFixes(ctx); err != nil {
		slog.Error("could not escalate failed fixes", "err", err)
	}
}

// EscalateFailedFixes flags every failed pending fix that outlived the grace period.
func (runner *DaemonRunner) EscalateFailedFixes(ctx context.Context) error {
	start := time.Now()
	defer func() {
		monitoring.EscalationDaemonDuration.Observe(time.Since(start).Seconds())
	}()

	escalated, err := runner.approvalService.EscalateFailedFixes(ctx, runner.gracePeriod)
	if err != nil {
		return err
	}
	if escalated > 0 {
		slog.Info("escalated failed fixes", "amount", escalated, "duration", time.Since(start))
	}
	return nil
}
