package main

import (
	"fmt"

	"hdfscope/internal/scan"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var ext string

	scanCmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List matching data files in a directory",
		Args:  cobra.MaximumNArgs(1),
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

			entries, err := scan.ListEntries(dir, patterns)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No matching files in %s\n", dir)
				return nil
			}

			for i, e := range entries {
				fmt.Printf("%3d. %-40s %8s  %s\n", i+1, e.Name(), humanize.Bytes(uint64(e.Size)), humanize.Time(e.ModTime))
			}
			return nil
		},
	}

	scanCmd.Flags().StringVar(&ext, "ext", "", "whitespace-separated filename patterns, e.g. \"*.h5 *.hdf5\"")

	return scanCmd
}
