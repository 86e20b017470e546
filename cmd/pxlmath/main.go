// Command pxlmath prints the transform and projection matrices pxlmath
// builds, for pasting into shaders or checking another engine's output.
//
// Usage:
//
//	pxlmath -op perspective -fov 60 -ar 16:9 -near 0.1 -far 100
//	pxlmath -op trs -t 1,2,3 -r 0,90,0 -s 1,1,1
//	pxlmath -op inverse -in matrix.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"pxlmath"
)

var errSingular = errors.New("matrix is singular")

func main() {
	flags, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelInfo
	if flags.Verbose() {
		level = slog.LevelDebug
	}
	pxlmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(flags, os.Stdout); err != nil {
		pxlmath.Logger().Error("pxlmath failed", "op", flags.Op(), "err", err)
		os.Exit(1)
	}
}

// parseFlags parses args and, on failure, writes the error and the usage to
// w exactly once.
func parseFlags(name string, args []string, w io.Writer) (*flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f, err := NewFlags(fs, args)
	if err == nil {
		return f, nil
	}
	fs.SetOutput(w)
	if !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(w, "%s\n", err.Error())
	}
	fs.Usage()
	return nil, err
}

func run(f *flags, w io.Writer) error {
	log := pxlmath.Logger()
	var m pxlmath.Mat4

	switch f.Op() {
	case "perspective":
		log.Debug("building perspective", "fov", f.Fov(), "ar", f.Ar(), "near", f.Near(), "far", f.Far())
		m = pxlmath.PerspectiveFov(f.Fov()*pxlmath.Deg2Rad, f.Ar(), f.Near(), f.Far())
	case "orthographic":
		log.Debug("building orthographic", "ar", f.Ar(), "size", f.Size(), "near", f.Near(), "far", f.Far())
		m = pxlmath.Orthographic(f.Near(), f.Far(), -f.Ar(), f.Ar(), 1, -1, f.Size())
	case "trs", "view":
		r := pxlmath.QuatFromEuler(f.Rotation().Scale(pxlmath.Deg2Rad))
		log.Debug("building "+f.Op(), "t", f.Translation(), "r", r, "s", f.Scale())
		if f.Op() == "trs" {
			m = pxlmath.TRS(f.Translation(), r, f.Scale())
		} else {
			m = pxlmath.View(f.Translation(), r, f.Scale())
		}
	case "inverse":
		in, err := loadMatrix(f.In())
		if err != nil {
			return err
		}
		log.Debug("inverting", "path", f.In(), "matrix", in)
		det := in.Inverse(&m)
		if det == 0 {
			return fmt.Errorf("%s: %w", f.In(), errSingular)
		}
		if _, err := fmt.Fprintf(w, "%v\ndet: %g\n", m, det); err != nil {
			return fmt.Errorf("failed to write matrix: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown operation %q", f.Op())
	}

	if _, err := fmt.Fprintln(w, m); err != nil {
		return fmt.Errorf("failed to write matrix: %w", err)
	}
	return nil
}
