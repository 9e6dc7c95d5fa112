package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hdfscope/internal/watch"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var ext string

	watchCmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a directory for data files appearing or disappearing",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.Scan.DefaultDirectory
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				dir = "."
			}

			patterns := splitPatterns(ext)
			if len(patterns) == 0 {
				patterns = cfg.Scan.Extensions
			}

			debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
			w, err := watch.New(dir, patterns, debounce)
			if err != nil {
				return err
			}

			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			fmt.Printf("Watching %s (press Ctrl+C to stop)\n", dir)
			for _, name := range w.Files() {
				fmt.Printf("  %s\n", name)
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case ev, ok := <-w.Events():
					if !ok {
						return nil
					}
					fmt.Printf("[%s] %s %s\n", ev.Timestamp.Format("15:04:05"), ev.Op, ev.Path)
				case <-sigCh:
					fmt.Println("\nStopping watcher...")
					return nil
				}
			}
		},
	}

	watchCmd.Flags().StringVar(&ext, "ext", "", "whitespace-separated filename patterns, e.g. \"*.h5 *.hdf5\"")

	return watchCmd
}
