package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kovidgoyal/xybri/gamut"
	"github.com/kovidgoyal/xybri/preview"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	model := flag.String("model", string(gamut.LCT001), "device model to simulate, one of: "+fmt.Sprint(gamut.Models()))
	jobs := flag.Int("j", 0, "number of goroutines to use, 0 means one per CPU")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: gamutpreview [-model M] [-j N] [-v] input-file [output-file]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	input_file := flag.Arg(0)
	output_file := input_file + ".preview.png"
	if flag.NArg() == 2 {
		output_file = flag.Arg(1)
	}
	if _, err = preview.FormatFromFilename(output_file); err != nil {
		return
	}
	m := gamut.Model(*model)
	family := gamut.FamilyForModel(m)
	if family == gamut.UNKNOWN_FAMILY {
		slog.Warn("unrecognised model, colors will not be clamped", "model", m)
	}
	start := time.Now()
	img, err := preview.Open(input_file)
	if err != nil {
		return
	}
	slog.Debug("decoded", "file", input_file, "bounds", img.Bounds().String(), "took", time.Since(start))
	start = time.Now()
	if img, err = preview.Simulate(img, m, preview.Concurrency(*jobs)); err != nil {
		return
	}
	slog.Debug("simulated", "model", m, "family", family.String(), "gamut", gamut.TriangleForModel(m).String(), "took", time.Since(start))
	if err = preview.Save(img, output_file); err != nil {
		return
	}
	fmt.Println("Preview saved to:", output_file)
}
