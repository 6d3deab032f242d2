// Command boundguard checks boundary files for self-intersections, and tries
// edits against them before they are made.
//
// Boundaries are read from YAML, GeoJSON, SVG or plain text ("x z" per line)
// files, picked by extension. With --stdin, plain text is read from stdin
// instead of a file.
//
// Negative coordinates need the --flag=value form, as in --z=-5, or they are
// taken for flags.
//
// Exit status is 0 when the boundary is clean or the edit is accepted, 1 when it
// crosses itself or the edit is rejected, and 2 for anything else.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/boundguard/boundary"
	"github.com/osuushi/boundguard/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitError    = 2
)

type config struct {
	verbose bool
	noColor bool
	draw    string
	scale   float64
	imgcat  bool
	stdin   bool
	ccw     bool

	file   string
	script string
	write  string
	index  int

	x, y, z float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := &config{}
	app := kingpin.New("boundguard", "Check boundaries and boundary edits for self-intersections.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Flag("verbose", "Log debug output, including rejected edits.").Short('v').Envar("BOUNDGUARD_VERBOSE").BoolVar(&cfg.verbose)
	app.Flag("no-color", "Don't color the output.").Envar("BOUNDGUARD_NO_COLOR").BoolVar(&cfg.noColor)
	app.Flag("draw", "Draw the resulting boundary to this PNG file.").Envar("BOUNDGUARD_DRAW").StringVar(&cfg.draw)
	app.Flag("scale", "Pixels per world unit when drawing.").Default("20").Envar("BOUNDGUARD_SCALE").Float64Var(&cfg.scale)
	app.Flag("imgcat", "Print the drawing to the terminal (iTerm only).").BoolVar(&cfg.imgcat)
	app.Flag("stdin", "Read the boundary from stdin, as plain text, instead of a file.").BoolVar(&cfg.stdin)

	check := app.Command("check", "Report whether a boundary crosses itself.")
	check.Arg("file", "Boundary file.").StringVar(&cfg.file)

	insert := app.Command("insert", "Try inserting a point so that it lands at --index.")
	del := app.Command("delete", "Try deleting the point at --index.")
	move := app.Command("move", "Try moving the point at --index.")
	for _, cmd := range []*kingpin.CmdClause{insert, del, move} {
		cmd.Arg("file", "Boundary file.").StringVar(&cfg.file)
		cmd.Flag("index", "Point index.").Required().IntVar(&cfg.index)
		cmd.Flag("write", "Write the edited boundary here when the edit is accepted.").StringVar(&cfg.write)
		cmd.Flag("ccw", "Wind the written boundary counterclockwise.").BoolVar(&cfg.ccw)
	}
	for _, cmd := range []*kingpin.CmdClause{insert, move} {
		cmd.Flag("x", "X coordinate.").Required().Float64Var(&cfg.x)
		cmd.Flag("y", "Height.").Default("0").Float64Var(&cfg.y)
		cmd.Flag("z", "Z coordinate.").Required().Float64Var(&cfg.z)
	}

	apply := app.Command("apply", "Apply an edit script. Either every edit is accepted, or none are.")
	apply.Arg("file", "Boundary file.").StringVar(&cfg.file)
	apply.Flag("script", "YAML edit script.").Required().StringVar(&cfg.script)
	apply.Flag("write", "Write the edited boundary here when every edit is accepted.").StringVar(&cfg.write)
	apply.Flag("ccw", "Wind the written boundary counterclockwise.").BoolVar(&cfg.ccw)

	command, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "boundguard: %v\n", err)
		return exitError
	}
	if cfg.stdin == (cfg.file != "") {
		fmt.Fprintln(stderr, "boundguard: give either a boundary file or --stdin")
		return exitError
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	au := aurora.NewAurora(!cfg.noColor)

	b, err := load(cfg, stdin)
	if err != nil {
		logger.Error("could not load boundary", "file", cfg.file, "err", err)
		return exitError
	}
	b.Configure(boundary.WithLogger(logger))
	logger.Debug("loaded boundary", "file", cfg.file, "boundary", pretty.Sprint(b.Points))

	var status int
	switch command {
	case check.FullCommand():
		status = runCheck(b, stdout, au)
	case insert.FullCommand():
		status = runEdit(b, boundary.Edit{Op: boundary.OpInsert, Index: cfg.index, X: float32(cfg.x), Y: float32(cfg.y), Z: float32(cfg.z)}, cfg, stdout, au, logger)
	case del.FullCommand():
		status = runEdit(b, boundary.Edit{Op: boundary.OpDelete, Index: cfg.index}, cfg, stdout, au, logger)
	case move.FullCommand():
		status = runEdit(b, boundary.Edit{Op: boundary.OpMove, Index: cfg.index, X: float32(cfg.x), Y: float32(cfg.y), Z: float32(cfg.z)}, cfg, stdout, au, logger)
	case apply.FullCommand():
		status = runApply(b, cfg, stdout, au, logger)
	}

	if cfg.draw != "" && status != exitError {
		if err := render.PNG(cfg.draw, b, cfg.scale); err != nil {
			logger.Error("could not draw boundary", "file", cfg.draw, "err", err)
			return exitError
		}
		if cfg.imgcat {
			if err := render.Cat(cfg.draw, stdout); err != nil {
				logger.Error("could not print drawing", "err", err)
			}
		}
	}
	return status
}

func load(cfg *config, stdin io.Reader) (*boundary.Boundary, error) {
	if cfg.stdin {
		b, err := boundary.ReadText(stdin)
		if err != nil {
			return nil, err
		}
		b.Name = "stdin"
		return b, nil
	}
	return boundary.ReadFile(cfg.file)
}

func runCheck(b *boundary.Boundary, stdout io.Writer, au aurora.Aurora) int {
	err := b.Validate()
	switch {
	case err == nil:
		winding := "counterclockwise"
		if b.Clockwise() {
			winding = "clockwise"
		}
		fmt.Fprintf(stdout, "%s: %s\n", b, au.Green("ok"))
		fmt.Fprintf(stdout, "  area %g, %s\n", b.Area(), winding)
		return exitOK
	case errors.Is(err, boundary.ErrSelfIntersection):
		fmt.Fprintf(stdout, "%s: %s\n", b, au.Red("crosses itself"))
		for _, pair := range b.Crossings() {
			fmt.Fprintf(stdout, "  edges %v and %v cross\n", pair.A, pair.B)
		}
		return exitRejected
	default:
		fmt.Fprintf(stdout, "%s: %s\n", b, au.Red(err))
		return exitError
	}
}

func runEdit(b *boundary.Boundary, edit boundary.Edit, cfg *config, stdout io.Writer, au aurora.Aurora, logger *slog.Logger) int {
	err := b.ApplyEdit(edit)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "%v: %s\n", edit, au.Green("accepted"))
	case errors.Is(err, boundary.ErrSelfIntersection):
		fmt.Fprintf(stdout, "%v: %s\n", edit, au.Red("rejected, boundary would cross itself"))
		return exitRejected
	default:
		logger.Error("could not apply edit", "edit", edit.String(), "err", err)
		return exitError
	}
	return write(b, cfg, logger)
}

func runApply(b *boundary.Boundary, cfg *config, stdout io.Writer, au aurora.Aurora, logger *slog.Logger) int {
	edits, err := boundary.LoadScript(cfg.script)
	if err != nil {
		logger.Error("could not load edit script", "file", cfg.script, "err", err)
		return exitError
	}

	err = b.Apply(edits)
	var stepErr *boundary.StepError
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "%d edits: %s\n", len(edits), au.Green("accepted"))
	case errors.As(err, &stepErr) && errors.Is(err, boundary.ErrSelfIntersection):
		fmt.Fprintf(stdout, "step %d (%v): %s\n", stepErr.Step, stepErr.Edit, au.Red("rejected, boundary would cross itself"))
		return exitRejected
	default:
		logger.Error("could not apply edit script", "err", err)
		return exitError
	}
	return write(b, cfg, logger)
}

func write(b *boundary.Boundary, cfg *config, logger *slog.Logger) int {
	if cfg.write == "" {
		return exitOK
	}
	if cfg.ccw && b.WindCounterclockwise() {
		logger.Debug("reversed boundary to wind counterclockwise", "boundary", b.Name)
	}
	if err := boundary.WriteFile(cfg.write, b); err != nil {
		logger.Error("could not write boundary", "file", cfg.write, "err", err)
		return exitError
	}
	logger.Debug("wrote boundary", "file", cfg.write)
	return exitOK
}
