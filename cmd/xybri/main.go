package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kovidgoyal/xybri"
	"github.com/kovidgoyal/xybri/gamut"
)

var _ = fmt.Print

type result struct {
	Input string      `json:"input"`
	Model gamut.Model `json:"model,omitempty"`
	XYBri xybri.XYBri `json:"xybri"`
	RGB   xybri.RGB   `json:"rgb"`
	Hex   string      `json:"hex"`
}

func parse_floats(s string, n int) (ans []float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers in %#v", n, s)
	}
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number in %#v: %w", s, err)
		}
		ans = append(ans, v)
	}
	return
}

// parse_color accepts rrggbb, #rrggbb, r,g,b or xy:x,y,bri
func parse_color(spec string) (xybri.XYBri, error) {
	switch {
	case strings.HasPrefix(spec, "xy:"):
		v, err := parse_floats(spec[3:], 3)
		if err != nil {
			return xybri.XYBri{}, err
		}
		ans := xybri.XYBri{X: v[0], Y: v[1], Bri: v[2]}
		return ans, ans.Validate()
	case strings.Contains(spec, ","):
		v, err := parse_floats(spec, 3)
		if err != nil {
			return xybri.XYBri{}, err
		}
		return xybri.RGBToXYBri(xybri.RGB{R: v[0], G: v[1], B: v[2]})
	}
	return xybri.HexToXYBri(spec)
}

func convert(spec string, model gamut.Model) (ans result, err error) {
	ans.Input, ans.Model = spec, model
	if ans.XYBri, err = parse_color(spec); err != nil {
		return
	}
	slog.Debug("parsed", "input", spec, "xybri", ans.XYBri.String())
	if model != "" {
		family := gamut.FamilyForModel(model)
		if family == gamut.UNKNOWN_FAMILY {
			slog.Warn("unrecognised model, no gamut clamping", "model", model)
		}
		ans.XYBri = xybri.XYBriForModel(ans.XYBri, model)
		slog.Debug("clamped", "model", model, "family", family.String(), "xybri", ans.XYBri.String())
	}
	if ans.RGB, err = xybri.XYBriToRGB(ans.XYBri); err != nil {
		return
	}
	ans.Hex = ans.RGB.Hex()
	return
}

func setup_logger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	model := flag.String("model", "", "clamp colors to the gamut of this device model, one of: "+fmt.Sprint(gamut.Models()))
	verbose := flag.Bool("v", false, "log conversion steps to stderr")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: xybri [-model M] [-v] rrggbb|r,g,b|xy:x,y,bri ...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	setup_logger(*verbose)
	enc := json.NewEncoder(os.Stdout)
	for _, spec := range flag.Args() {
		var r result
		if r, err = convert(spec, gamut.Model(*model)); err != nil {
			err = fmt.Errorf("%s: %w", spec, err)
			return
		}
		if err = enc.Encode(r); err != nil {
			return
		}
	}
}
