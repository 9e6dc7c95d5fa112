package main

import (
	"fmt"

	"hdfscope/internal/catalog"
	"hdfscope/internal/store"

	"github.com/spf13/cobra"
)

// NewDatasetsCmd creates the datasets command
func NewDatasetsCmd() *cobra.Command {
	datasetsCmd := &cobra.Command{
		Use:   "datasets <file>",
		Short: "List the datasets inside an HDF5 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := store.OpenHDF5(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			cat, err := catalog.Discover(f)
			if err != nil {
				return err
			}
			if cat.Len() == 0 {
				fmt.Println("No datasets found in this file.")
				return nil
			}

			desc, _ := f.(store.Describer)
			for i, p := range cat.Paths() {
				if desc != nil {
					if info, err := desc.Describe(p); err == nil {
						fmt.Printf("%3d. %-40s %s\n", i+1, p, info)
						continue
					}
				}
				fmt.Printf("%3d. %s\n", i+1, p)
			}
			return nil
		},
	}

	return datasetsCmd
}
