package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RenoirTan/tti/internal/codec"
	"github.com/RenoirTan/tti/internal/config"
	"github.com/RenoirTan/tti/internal/imagery"
	"github.com/RenoirTan/tti/internal/logging"
	"github.com/RenoirTan/tti/internal/preview"
	"github.com/RenoirTan/tti/internal/tui"
)

// Encode/decode command flags
var (
	maxRatio     float64
	portrait     bool
	noPreview    bool
	showBytes    bool
	printDecoded bool
	printEncoded bool
	inspectLimit int
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)

	encodeCmd.Flags().Float64VarP(&maxRatio, "max-ratio", "q", 0, "Maximum width:height ratio for the final image (0 = unconstrained)")
	encodeCmd.Flags().BoolVar(&portrait, "portrait", false, "Make the image taller than wide")
	encodeCmd.Flags().BoolVar(&noPreview, "no-preview", false, "Do not show a terminal preview of the image")
	encodeCmd.Flags().BoolVarP(&showBytes, "show-bytes", "b", false, "Print the encoded bytes as hex")

	decodeCmd.Flags().BoolVar(&printDecoded, "print-decoded", false, "Print the decoded bytes to stdout")
	decodeCmd.Flags().BoolVar(&printEncoded, "print-encoded", false, "Print the encoded bytes embedded in the pixels as hex")

	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "Maximum number of blocks to list (0 = all)")
}

// encodeCmd turns a file into a PNG image
var encodeCmd = &cobra.Command{
	Use:   "encode <file> [output.png]",
	Short: "Encode a file into an image",
	Long: `Encode a file into an RGB image.

The file's bytes are framed into blocks, padded to fill a rectangle, and
laid into pixels three bytes at a time. With --max-ratio the image
dimensions are grown minimally until the aspect ratio fits the bound.`,
	Example: `  # Encode with a preview, no output file
  tti encode document.pdf

  # Encode to a file, near-square
  tti encode document.pdf document.png

  # Bound the aspect ratio at 2:1
  tti encode document.pdf document.png --max-ratio 2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	if !cmd.Flags().Changed("max-ratio") {
		maxRatio = prefs.MaxRatio
	}
	if !cmd.Flags().Changed("portrait") {
		portrait = prefs.Portrait
	}
	if !cmd.Flags().Changed("no-preview") {
		noPreview = !prefs.Preview
	}

	enc := codec.Encoder{MaxRatio: maxRatio, Portrait: portrait}
	encoded, err := enc.EncodeFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", args[0], err)
	}
	if len(encoded) == 0 {
		return fmt.Errorf("%s is empty, nothing to encode", args[0])
	}
	logging.Info("encoded file",
		zap.String("path", args[0]),
		zap.Int("encoded_bytes", len(encoded)),
	)

	if showBytes {
		printHex(encoded)
	}

	w, h, err := enc.RecommendedDimensions(encoded)
	if err != nil {
		return err
	}
	img, err := imagery.Rasterize(encoded, w, h)
	if err != nil {
		return fmt.Errorf("failed to rasterize stream: %w", err)
	}

	if !noPreview {
		fmt.Printf("%dx%d pixels\n", w, h)
		fmt.Print(preview.Render(img, preview.TerminalWidth()))
	}

	if len(args) == 2 {
		if err := imagery.WritePNG(args[1], img); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%dx%d)\n", args[1], w, h)
	}

	return nil
}

// decodeCmd recovers the original file from an image
var decodeCmd = &cobra.Command{
	Use:   "decode <image> [output]",
	Short: "Decode an image back to the original file",
	Long: `Decode an image produced by 'tti encode' back into the original bytes.

The image's pixels are flattened row-major into a byte stream and the
block framing is undone. Only losslessly stored images (PNG) are
guaranteed to decode; JPEG compression destroys the payload.`,
	Example: `  # Decode to a file
  tti decode document.png document.pdf

  # Print the recovered bytes instead of writing a file
  tti decode document.png --print-decoded`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	img, format, err := imagery.ReadImage(args[0])
	if err != nil {
		return err
	}
	if format != "png" {
		logging.Warn("source image format is not lossless; decoded bytes may be corrupt",
			zap.String("path", args[0]),
			zap.String("format", format),
		)
	}

	flattened := imagery.Flatten(img)
	logging.LogRawBytes("flattened pixels", flattened)

	dec := codec.Decoder{}
	if printEncoded {
		dec.Intermediate = os.Stdout
	}
	decoded, err := dec.DecodeBytes(flattened)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	if printDecoded {
		os.Stdout.Write(decoded)
	}
	if len(args) == 2 {
		if err := os.WriteFile(args[1], decoded, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", args[1], len(decoded))
	}

	return nil
}

// inspectCmd opens the interactive block inspector
var inspectCmd = &cobra.Command{
	Use:   "inspect <image>",
	Short: "Inspect the block structure of an encoded image",
	Long: `Open an interactive viewer listing every 8-byte block in the image's
byte stream: header bits, shift and end flags, declared final length,
parity bits, and the payload as hex and ASCII.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	if !cmd.Flags().Changed("limit") {
		inspectLimit = prefs.InspectBytesLimit
	}

	img, _, err := imagery.ReadImage(args[0])
	if err != nil {
		return err
	}

	blocks, endIndex, truncated := tui.SplitBlocks(imagery.Flatten(img), inspectLimit)
	model := tui.NewInspector(args[0], blocks, endIndex, truncated)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}
	return nil
}

// loadPreferences returns the user's saved preferences, falling back to
// defaults when the config file is missing or unreadable. Config problems
// are logged, not fatal; flags still work without a config file.
func loadPreferences() *config.Preferences {
	reg, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("failed to load config, using defaults", zap.Error(err))
		return config.NewRegistry().Preferences
	}
	return reg.Preferences
}

// printHex writes data as space-separated lowercase hex pairs.
func printHex(data []byte) {
	for _, b := range data {
		fmt.Printf("%02x ", b)
	}
	fmt.Println()
}
