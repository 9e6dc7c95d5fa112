package main

import (
	"fmt"

	"hdfscope/internal/config"
	"hdfscope/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hdfscope",
		Short:   "Browse and visualize datasets in HDF5 files",
		Long:    `hdfscope explores directories of HDF5 data files, lists the datasets inside them, loads a chosen dataset, and renders its summary diffraction frames in the terminal.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Printf("Warning: %v\n", configErr)
				fmt.Println("Using default settings.")
				cfg = config.New()
			}

			if debug {
				cfg.Settings.Debug = true
			}
			log.SetDebug(cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hdfscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewDatasetsCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}
