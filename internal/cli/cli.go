// Package cli implements the roundrect command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"roundrect/pkg/api"
	"roundrect/pkg/graphics"
	"roundrect/pkg/roundrect"
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage error")

// Run executes the command in args (without the program name) and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	args, verbose := SplitVerbose(args)
	if verbose {
		EnableDebugLog(stderr)
		defer api.SetLogger(nil)
	}

	if len(args) < 1 {
		PrintUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "segments":
		err = cmdSegments(stdout, args[1:])
	case "info":
		if len(args) < 2 {
			err = fmt.Errorf("%w: roundrect info <scene.yaml>", errUsage)
			break
		}
		err = cmdInfo(stdout, args[1])
	case "render":
		if len(args) < 2 {
			err = fmt.Errorf("%w: roundrect render <scene.yaml> [-o output.png] [-scale s] [-bg color] [-transparent]", errUsage)
			break
		}
		err = cmdRender(stdout, args[1:])
	case "help", "-h", "--help":
		PrintUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		PrintUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// SplitVerbose removes every -v or --verbose flag from args and reports
// whether one was present.
func SplitVerbose(args []string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	verbose := false
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			verbose = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, verbose
}

// EnableDebugLog sends debug level library logs to w.
func EnableDebugLog(w io.Writer) {
	api.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// EditorArgs reports whether args ask for the editor, either as
// "gui [scene.yaml]" or a lone scene file, and returns the editor's own
// arguments. Verbose flags are ignored.
func EditorArgs(args []string) ([]string, bool) {
	args, _ = SplitVerbose(args)
	if len(args) == 0 {
		return nil, false
	}
	arg := strings.ToLower(args[0])
	switch {
	case arg == "gui":
		return args[1:], true
	case len(args) == 1 && (strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml")):
		return args, true
	}
	return nil, false
}

// PrintUsage writes the command summary to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, `roundrect - rounded rectangle path builder

Usage:
  roundrect [-v] <command> [arguments]

Commands:
  segments [options]            Print the outline segments of one rectangle
    -x, -y <n>                  Origin (default: 0)
    -w, -h <n>                  Size (default: 100 x 100)
    -tl, -tr, -br, -bl <r>      Radius of one corner
    -all <r>                    Radius of every corner not set individually
  info <scene.yaml>             Describe the shapes of a scene
  render <scene.yaml> [options] Render a scene to PNG
    -o <output.png>             Output file (default: output.png)
    -scale <s>                  Pixels per scene unit (default: 1)
    -bg <color>                 Background override
    -transparent                Transparent background

  -v                            Log debug output to stderr

Examples:
  roundrect segments -w 64 -h 32 -tl 16
  roundrect render card.yaml -o card.png -scale 2`)
}

// parseFloatArg reads the value following flag.
func parseFloatArg(args []string, i int) (float64, error) {
	if i+1 >= len(args) {
		return 0, fmt.Errorf("%w: %s needs a value", errUsage, args[i])
	}
	v, err := strconv.ParseFloat(args[i+1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errUsage, args[i], err)
	}
	return v, nil
}

func cmdSegments(w io.Writer, args []string) error {
	rect := graphics.Rect{Width: 100, Height: 100}
	var spec roundrect.CornerRadii
	var all *float64

	for i := 0; i < len(args); i++ {
		v, err := parseFloatArg(args, i)
		if err != nil {
			if strings.HasPrefix(args[i], "-") {
				return err
			}
			return fmt.Errorf("%w: unexpected argument %q", errUsage, args[i])
		}
		switch args[i] {
		case "-x":
			rect.X = v
		case "-y":
			rect.Y = v
		case "-w":
			rect.Width = v
		case "-h":
			rect.Height = v
		case "-tl":
			spec = append(spec, roundrect.CornerRadius{Corners: roundrect.TopLeft, Radius: v})
		case "-tr":
			spec = append(spec, roundrect.CornerRadius{Corners: roundrect.TopRight, Radius: v})
		case "-br":
			spec = append(spec, roundrect.CornerRadius{Corners: roundrect.BottomRight, Radius: v})
		case "-bl":
			spec = append(spec, roundrect.CornerRadius{Corners: roundrect.BottomLeft, Radius: v})
		case "-all":
			all = &v
		default:
			return fmt.Errorf("%w: unknown option %s", errUsage, args[i])
		}
		i++
	}
	// Individual corners come first so they win over -all.
	if all != nil {
		spec = append(spec, roundrect.CornerRadius{Corners: roundrect.AllCorners, Radius: *all})
	}

	segs, err := roundrect.Build(rect, spec)
	if err != nil {
		return err
	}
	radii, err := roundrect.EffectiveRadii(rect, spec)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Rect: %s %g x %g\n", rect.Origin(), rect.Width, rect.Height)
	printRadii(w, radii)
	fmt.Fprintf(w, "Segments (%d):\n", len(segs))
	for i, s := range segs {
		fmt.Fprintf(w, "%4d: %s\n", i, s)
	}
	return nil
}

func printRadii(w io.Writer, r roundrect.Radii) {
	fmt.Fprintf(w, "Radii: top_left=%g top_right=%g bottom_right=%g bottom_left=%g\n",
		r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
}

func cmdInfo(w io.Writer, path string) error {
	sc, err := api.LoadScene(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "File: %s\n", path)
	fmt.Fprintln(w, "────────────────────────────────────────")
	fmt.Fprintf(w, "Size: %g x %g\n", sc.Width, sc.Height)
	if sc.Background != "" {
		fmt.Fprintf(w, "Background: %s\n", sc.Background)
	}
	fmt.Fprintf(w, "Shapes: %d\n", len(sc.Shapes))
	if len(sc.Shapes) > 0 {
		b, err := sc.Bounds()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Drawn bounds: %s %g x %g\n", b.Origin(), b.Width, b.Height)
	}

	paths, err := sc.Paths()
	if err != nil {
		return err
	}
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		name := s.Name
		if name == "" {
			name = "#" + strconv.Itoa(i)
		}
		radii, err := s.EffectiveRadii()
		if err != nil {
			return err
		}
		b := paths[i].Bounds()

		fmt.Fprintf(w, "\n%s:\n", name)
		fmt.Fprintf(w, "  Rect: %s %g x %g\n", s.Rect.Origin(), s.Rect.Width, s.Rect.Height)
		fmt.Fprint(w, "  ")
		printRadii(w, radii)
		fmt.Fprintf(w, "  Segments: %d\n", len(paths[i].Segments))
		fmt.Fprintf(w, "  Bounds: %s %g x %g\n", b.Origin(), b.Width, b.Height)
	}
	return nil
}

func cmdRender(w io.Writer, args []string) error {
	path := args[0]
	output := "output.png"
	var opts []api.Option

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 >= len(args) {
				return fmt.Errorf("%w: -o needs a value", errUsage)
			}
			output = args[i+1]
			i++
		case "-scale":
			s, err := parseFloatArg(args, i)
			if err != nil {
				return err
			}
			if s <= 0 {
				return fmt.Errorf("%w: -scale must be positive", errUsage)
			}
			opts = append(opts, api.Scale(s))
			i++
		case "-bg":
			if i+1 >= len(args) {
				return fmt.Errorf("%w: -bg needs a value", errUsage)
			}
			c, err := api.ParseColor(args[i+1])
			if err != nil {
				return err
			}
			opts = append(opts, api.Background(c))
			i++
		case "-transparent":
			opts = append(opts, api.Transparent())
		default:
			return fmt.Errorf("%w: unknown option %s", errUsage, args[i])
		}
	}

	sc, err := api.LoadScene(path)
	if err != nil {
		return err
	}

	o := api.NewRenderOptions(opts...)
	pw, ph := o.EffectiveSize(sc.Width, sc.Height)

	if err := sc.RenderToFile(output, opts...); err != nil {
		return err
	}
	fmt.Fprintf(w, "✓ Saved %s (%dx%d pixels)\n", output, pw, ph)
	return nil
}
