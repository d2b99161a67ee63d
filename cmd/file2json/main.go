// Package main provides the CLI entry point for file2json-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snagasawa/file2json-go/internal/config"
	"github.com/snagasawa/file2json-go/internal/logger"
	"github.com/snagasawa/file2json-go/pkg/file2json"
)

var (
	outputPath string
	forcedType string
	toStdout   bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "file2json [input file]",
		Short: "Convert spreadsheet, delimited-text, JSON and plain-text files to JSON",
		Long: `file2json converts tabular and text files (xlsx, csv, tsv, json, txt)
into a normalized JSON representation. Vertically merged spreadsheet cells
are resolved by propagating the anchor value down the merged span.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file path (default: input path with .json extension)")
	rootCmd.Flags().StringVarP(&forcedType, "type", "t", "", "Force file type instead of auto-detection (excel, csv, tsv, json, text)")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print JSON to stdout instead of writing a file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.Initialize(cfg.IsProduction(), verbose)

	opts := file2json.DefaultOptions()
	opts.MaxFileSize = cfg.MaxFileSize()
	opts.SampleRows = cfg.SampleRows

	if forcedType != "" {
		format, err := file2json.ParseFormat(forcedType)
		if err != nil {
			return fmt.Errorf("invalid type: %s (must be excel, csv, tsv, json, or text)", forcedType)
		}
		opts.Format = format
	} else {
		log.Debug("format detected", "input", inputPath, "format", file2json.Detect(inputPath))
	}

	if !toStdout {
		opts.OutputPath = outputPath
		if opts.OutputPath == "" {
			opts.OutputPath = defaultOutputPath(inputPath)
		}
	}

	log.Debug("converting", "input", inputPath, "output", opts.OutputPath)

	result, err := file2json.Convert(inputPath, opts)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// defaultOutputPath swaps the input path's extension for .json.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
}
