// Command proxycore is the composition root wiring the mapping tables,
// translator registry, and session manager into a runnable core
// (SPEC_FULL.md §1 "Out of scope: ... the startup bootstrap, the raw
// RakNet and TCP transports"). Accepting real Bedrock/Java connections and
// loading configuration from YAML/flags are external collaborators this
// binary does not implement; wiring a concrete transport pair in is the
// only step left to turn this into a listening proxy.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/crossbridge/proxycore/internal/config"
	"github.com/crossbridge/proxycore/internal/mapping"
	"github.com/crossbridge/proxycore/internal/pipeline"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/sessionmanager"
	"github.com/crossbridge/proxycore/internal/telemetry"
	"github.com/crossbridge/proxycore/internal/translators"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "proxycore:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()

	tables, err := mapping.Load()
	if err != nil {
		return fmt.Errorf("load mapping tables: %w", err)
	}

	log := telemetry.NewNoopLogger()
	met := telemetry.NewNoopMetrics()

	reg := registry.New(log)
	skins := translators.NewSkinWorkerPool(nil, 0)
	defer skins.Close()
	translators.Register(reg, tables, skins)

	mgr := sessionmanager.New(cfg.MaxPlayers, log, met)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := pipeline.NewTickLimiter(cfg.TickInterval)
	go runTicker(ctx, mgr, limiter)

	<-ctx.Done()
	mgr.Shutdown(context.Background(), cfg.ShutdownDrainTimeout)
	return nil
}

// runTicker paces the session manager's shared scheduler pulse
// (SPEC_FULL.md §4.6 "a shared scheduler wakes every session every 50ms").
func runTicker(ctx context.Context, mgr *sessionmanager.Manager, limiter *rate.Limiter) {
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		mgr.Tick()
	}
}

