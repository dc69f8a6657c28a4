// Tti turns arbitrary files into images and back.
//
// It frames the input bytes into self-delimiting 8-byte blocks, lays the
// result into an RGB pixel raster, and writes it as a lossless PNG. Decoding
// reads the pixels back and recovers the original file exactly.
//
// Usage:
//
//	tti encode <file> [output.png] [flags]
//	tti decode <image> [output] [flags]
//	tti inspect <image> [flags]
//
// See 'tti --help' for available flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RenoirTan/tti/internal/logging"
	"github.com/RenoirTan/tti/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tti",
	Short: "Turn files into images and back",
	Long: `Tti encodes any file into a rectangular RGB image and decodes it back.

The byte stream is framed into self-delimiting blocks, so no external
metadata is needed to recover the original file; the image alone carries
everything, as long as it is stored losslessly (PNG).`,
	Version: version.Version,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tti %s\n", version.Full())
	},
}
