package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/autochart/chart"
	"github.com/spf13/cobra"
)

var watchFlags chartFlags
var watchInterval time.Duration
var watchSettle time.Duration

func init() {
	addChartFlags(watchCmd, &watchFlags)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "how often the input is checked")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", time.Second, "quiet time before regenerating")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <input> <output>",
	Short: "Regenerates a chart whenever the input changes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := watchFlags.options(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return Watch(ctx, args[0], args[1], opts, watchInterval, watchSettle)
	},
}

func modTime(path string) time.Time {
	stat, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return stat.ModTime()
}

// Watch generates once, then again each time the input has been modified
// and left alone for settle. It returns when ctx is done, and nothing is
// written after that.
func Watch(ctx context.Context, input string, output string, opts chart.Options, interval time.Duration, settle time.Duration) error {
	var mu sync.Mutex
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if _, err := GenerateFile(input, output, "", opts); err != nil {
			fmt.Printf("Could not generate %v: %v\n", output, err)
		}
	}

	last := modTime(input)
	regenerate()

	debounced := debounce.New(settle)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// drop a pending regenerate and wait out one already running
			debounced(func() {})
			mu.Lock()
			defer mu.Unlock()
			return nil
		case <-ticker.C:
			if mt := modTime(input); !mt.Equal(last) {
				last = mt
				debounced(regenerate)
			}
		}
	}
}
