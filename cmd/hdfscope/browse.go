package main

import (
	"fmt"
	"os"
	"strings"

	"hdfscope/internal/dataset"
	"hdfscope/internal/session"
	"hdfscope/internal/store"
	"hdfscope/internal/tui"
	"hdfscope/internal/viz"

	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	var (
		dir    string
		ext    string
		useTUI bool
	)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse HDF5 files and visualize datasets",
		Long: `Browse walks you through the full loop: pick a directory, pick a
data file, pick a dataset inside it, then render the dataset's mean and
maximum frames in the terminal. With --tui the prompts are replaced by a
full-screen picker.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := splitPatterns(ext)

			if useTUI {
				return runBrowseTUI(dir, patterns)
			}

			ctrl := session.New(cfg, store.OpenHDF5, viz.NewRenderer(cfg), os.Stdin, os.Stdout, dir, patterns)
			return ctrl.Run()
		},
	}

	browseCmd.Flags().StringVar(&dir, "dir", "", "directory to scan (skips the directory prompt)")
	browseCmd.Flags().StringVar(&ext, "ext", "", "whitespace-separated filename patterns, e.g. \"*.h5 *.hdf5\"")
	browseCmd.Flags().BoolVar(&useTUI, "tui", false, "use the full-screen picker instead of prompts")

	return browseCmd
}

// runBrowseTUI loops the picker until the user quits, rendering each
// selection as it is made.
func runBrowseTUI(dir string, patterns []string) error {
	renderer := viz.NewRenderer(cfg)
	if len(patterns) == 0 {
		patterns = cfg.Scan.Extensions
	}
	if dir == "" {
		dir = cfg.Scan.DefaultDirectory
	}

	for {
		sel, err := tui.Pick(store.OpenHDF5, dir, patterns)
		if err != nil {
			return err
		}
		if !sel.OK {
			fmt.Println("Exiting...")
			return nil
		}

		if err := renderSelection(renderer, sel); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func renderSelection(renderer *viz.Renderer, sel tui.Selection) error {
	f, err := store.OpenHDF5(sel.FilePath)
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := dataset.Load(f, sel.DatasetPath)
	if err != nil {
		return err
	}

	out, err := renderer.Render(d)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func splitPatterns(ext string) []string {
	fields := strings.Fields(ext)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
