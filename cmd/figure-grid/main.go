// Command figure-grid arranges four images in a captioned 2x2 grid.
//
// Run without arguments it composes the four example crops
// (r1_input_cropped.png, r1_MIMO-UNetplus_cropped.png,
// r1_restormer_cropped.png, r1_ours_cropped.png) into composite.jpg. It
// always exits 0; failures are printed as "Error: ..." on stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/ironsheep/figure-tools/internal/config"
	"github.com/ironsheep/figure-tools/internal/imaging"
	"github.com/ironsheep/figure-tools/pkg/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Compose four images into a 2x2 grid with a caption under each.

Images fill the grid top-left, top-right, bottom-left, bottom-right and are
stretched to the cell size. Layout, font and colours come from the GRID_*
environment variables.`

type gridCLI struct {
	Images   []string `arg:"" optional:"" default:"r1_input_cropped.png,r1_MIMO-UNetplus_cropped.png,r1_restormer_cropped.png,r1_ours_cropped.png" help:"Four images in cell order."`
	Captions []string `short:"c" default:"Original Image,MIMO UNet+,Restormer,Ours" help:"Four comma-separated captions in cell order."`
	Output   string   `short:"o" default:"composite.jpg" help:"Output path; the extension selects the format."`

	Version kong.VersionFlag `short:"v" help:"Print version information."`
}

func newParser(cli *gridCLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("figure-grid"),
		kong.Description(description),
		kong.Vars{"version": fmt.Sprintf("figure-grid %s (built %s, commit %s)", Version, BuildTime, GitCommit)},
	)
}

func main() {
	var cli gridCLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	run(&cli, os.Stdout)
}

// run composes the grid and reports the outcome on out.
func run(cli *gridCLI, out io.Writer) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	defer log.Sync()

	opts, err := cfg.ComposeOptions(log)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	outputPath, err := imaging.ComposeFiles(cli.Images, cli.Captions, cli.Output, opts)
	if err != nil {
		log.Debug("Compose failed", zap.Strings("images", cli.Images), zap.Error(err))
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	width, height := opts.Layout.CanvasSize()
	log.Info("Composite created",
		zap.Strings("images", cli.Images),
		zap.String("output", outputPath),
		zap.Int("width", width),
		zap.Int("height", height))
	fmt.Fprintf(out, "Composite image saved as: %s\n", outputPath)
}
