// Command naca writes the coordinates and plot of a NACA airfoil to files.
//
// Usage:
//
//	go run ./cmd/naca -digits 2412 -chord 1.5 -formats xlsx,png -out ./out
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
	"github.com/couchcryptid/naca-airfoil-service/internal/export"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	req     domain.Request
	outDir  string
	formats []export.Format
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return 2
	}

	p, err := domain.NewGenerator().Generate(opts.req)
	if err != nil {
		logger.Error("generation failed", "kind", domain.ErrorKind(err), "error", err)
		return 1
	}
	if p.Approximate {
		logger.Warn("approximate profile", "designation", p.Label, "notice", p.Notice)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		logger.Error("create output directory", "dir", opts.outDir, "error", err)
		return 1
	}
	for _, f := range opts.formats {
		path := filepath.Join(opts.outDir, export.FileName(p, f))
		if err := writeFile(path, p, f); err != nil {
			logger.Error("export failed", "format", string(f), "error", err)
			return 1
		}
		fmt.Fprintln(stdout, path)
	}

	x, t := p.MaxThickness()
	logger.Info("profile written", "designation", p.Label, "chord", p.Chord,
		"points", len(p.Points), "max_thickness", t, "max_thickness_x", x)
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("naca", flag.ContinueOnError)
	fs.SetOutput(stderr)

	series := fs.String("series", "", "series: 4, 5 or 6 (inferred from -digits when empty)")
	digits := fs.String("digits", "", "designation digits, e.g. 2412 or 23012")
	chord := fs.Float64("chord", 1.0, "chord length in meters")
	points := fs.Int("points", domain.DefaultLimits().DefaultPoints, "chordwise samples per surface")
	closedTE := fs.Bool("closed-te", false, "use the closed trailing edge thickness coefficient")
	outDir := fs.String("out", ".", "output directory")
	formats := fs.String("formats", "xlsx,png", "comma-separated output formats: csv, xlsx, png, svg")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *points < 2 {
		return options{}, fmt.Errorf("%w: need at least 2 samples, got %d", domain.ErrInvalidSampleCount, *points)
	}
	if *digits == "" {
		fs.Usage()
		return options{}, fmt.Errorf("%w: -digits is required", domain.ErrInvalidDesignation)
	}

	var (
		s   domain.Series
		err error
	)
	if *series != "" {
		s, err = domain.ParseSeries(*series)
	} else {
		s, err = domain.InferSeries(*digits)
	}
	if err != nil {
		return options{}, err
	}

	opts := options{
		req: domain.Request{
			Series:             s,
			Digits:             *digits,
			Chord:              *chord,
			Points:             *points,
			ClosedTrailingEdge: *closedTE,
		},
		outDir: *outDir,
	}
	for _, name := range strings.Split(*formats, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := export.ParseFormat(name)
		if err != nil {
			return options{}, err
		}
		opts.formats = append(opts.formats, f)
	}
	if len(opts.formats) == 0 {
		return options{}, errors.New("no output formats selected")
	}
	return opts, nil
}

// writeFile renders into memory first so a failed export leaves no partial file.
func writeFile(path string, p domain.Profile, f export.Format) error {
	var buf bytes.Buffer
	if err := export.Write(&buf, p, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
