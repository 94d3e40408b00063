package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/pingplot/pingplot/internal/history"
	"github.com/pingplot/pingplot/internal/logger"
	"github.com/pingplot/pingplot/internal/plot"
	"github.com/pingplot/pingplot/internal/render"
	"github.com/pingplot/pingplot/internal/sample"
)

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// runPlot is the whole program: spawn (or simulate) the ping stream, and
// drive buffer updates and redraws from its events until the stream ends
// or the user interrupts. One goroutine owns the buffer, the canvas, and
// the renderer for its entire lifetime, so nothing here needs a lock.
func runPlot(args []string) error {
	log := logger.NewEnvLogger("[pingplot]")
	dialect := sample.DialectFor(runtime.GOOS)

	// A help request among the passthrough arguments means we never spawn
	// the plot loop; compose our banner with ping's own usage text.
	if sample.HasHelpFlag(args) {
		fmt.Println(bannerStyle.Render(fmt.Sprintf(
			"pingplot %s. Pass any parameters you would normally pass to ping.", GetVersion())))
		fmt.Println("Ping help:")
		fmt.Print(sample.PingHelp(dialect))
		return nil
	}

	if len(args) == 0 {
		args = []string{viper.GetString("host")}
	}
	host := sample.ExtractHost(dialect, args)
	if simulateFlag {
		host = "simulation"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stream *sample.Stream
	if simulateFlag {
		stream = sample.Simulate(ctx, sample.DefaultSimulateInterval)
	} else {
		var err error
		stream, err = sample.Start(ctx, dialect, args, log)
		if err != nil {
			return err
		}
	}

	force := rendererFlag
	if force == render.StrategyAuto {
		force = viper.GetString("renderer")
	}
	renderer, strategy, err := render.Probe(force, log)
	if err != nil {
		return err
	}
	// Terminal state must be restored on every exit path, including the
	// error returns below; Close is idempotent.
	defer renderer.Close()
	log.Debug("renderer: %s, dialect: %s, host: %q", strategy, dialect, host)

	style := plot.StatsBasic
	if strategy == render.StrategyScreen {
		style = plot.StatsPercentile
	}

	ring := history.NewRing(viper.GetInt("history"))

	draw := func() error {
		w, h := renderer.Size()
		return renderer.Draw(plot.Plot(ring, w, h, host, style))
	}
	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-renderer.Events():
			if ev == render.Interrupted {
				return nil
			}
			// Resize: replay the existing buffer, consuming no samples.
			renderer.Invalidate()
			if err := draw(); err != nil {
				return err
			}

		case s, ok := <-stream.Events:
			if !ok {
				// Restore the terminal before any error hits stderr,
				// otherwise the diagnostic lands in the alternate buffer.
				renderer.Close()
				return stream.Err()
			}
			ring.Push(s)
			if err := draw(); err != nil {
				return err
			}
		}
	}
}
