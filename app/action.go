package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hourclock/editor"
	"github.com/ayoisaiah/hourclock/internal/config"
	"github.com/ayoisaiah/hourclock/internal/library"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/osutil"
	"github.com/ayoisaiah/hourclock/internal/pathutil"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
	"github.com/ayoisaiah/hourclock/report"
	"github.com/ayoisaiah/hourclock/server"
)

const (
	envNoColor          = "NO_COLOR"
	envHourclockNoColor = "HOURCLOCK_NO_COLOR"
)

var (
	errMissingArgs = errors.New("missing arguments; see --help for usage")
	errAborted     = errors.New("aborted")
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// withEnv runs fn with a fully set up environment and releases it after.
func withEnv(ctx *cli.Context, fn func(e *env) error) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	err = fn(e)

	if cerr := e.Close(); err == nil {
		err = cerr
	}

	return err
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// confirm asks the user to press ENTER before a destructive operation.
func confirm(ctx *cli.Context, msg string) error {
	if ctx.Bool(yesFlag.Name) {
		return nil
	}

	fmt.Fprint(config.Stdout, pterm.Warning.Sprint(msg+". Press ENTER to proceed or Ctrl-C to cancel"))

	var line string

	_, err := fmt.Fscanln(config.Stdin, &line)
	if err != nil && err.Error() != "unexpected newline" {
		return errAborted
	}

	return nil
}

// defaultAction opens the interactive editor.
func defaultAction(ctx *cli.Context) error {
	return withEnv(ctx, func(e *env) error {
		return editor.Run(e.p, e.log, editor.Options{
			PNGFile:   e.cfg.Export.PNGFile,
			CSVFile:   ctx.String(csvFileFlag.Name),
			Chart:     chartOptions(e.cfg),
			DarkTheme: e.cfg.Display.DarkTheme,
			AfterExport: func(path string) error {
				return runExportCmd(e.cfg.Export.Cmd, path)
			},
		})
	})
}

// listAction prints the gap-filled clock.
func listAction(ctx *cli.Context) error {
	return withEnv(ctx, func(e *env) error {
		display := e.p.Display()

		if ctx.Bool(jsonFlag.Name) {
			return printJSON(struct {
				Segments []models.DisplaySegment `json:"segments"`
				Summary  segment.Summary         `json:"summary"`
			}{display, e.p.Summary()})
		}

		printDisplayTable(config.Stdout, display)
		printSummary(config.Stdout, e.p.Summary())

		return nil
	})
}

func addAction(ctx *cli.Context) error {
	args := ctx.Args()
	if args.Len() < 3 {
		return errMissingArgs
	}

	return withEnv(ctx, func(e *env) error {
		seg, err := e.p.Add(segment.Input{
			Label: args.Get(0),
			Start: args.Get(1),
			End:   args.Get(2),
			Color: args.Get(3),
		})
		if err != nil {
			return err
		}

		report.SegmentAdded(seg)

		return nil
	})
}

func editAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errMissingArgs
	}

	return withEnv(ctx, func(e *env) error {
		seg, err := e.p.Update(ctx.Args().First(), segment.Input{
			Label: ctx.String(labelFlag.Name),
			Start: ctx.String(startFlag.Name),
			End:   ctx.String(endFlag.Name),
			Color: ctx.String(colorFlag.Name),
		})
		if err != nil {
			return err
		}

		report.SegmentUpdated(seg)

		return nil
	})
}

// deleteAction resolves every reference before deleting so that row numbers
// refer to the list as it was printed.
func deleteAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errMissingArgs
	}

	return withEnv(ctx, func(e *env) error {
		ids := make([]string, 0, ctx.NArg())

		for _, ref := range ctx.Args().Slice() {
			seg, err := e.p.Resolve(ref)
			if err != nil {
				return err
			}

			ids = append(ids, seg.ID)
		}

		for _, id := range ids {
			seg, err := e.p.Delete(id)
			if err != nil {
				return err
			}

			report.SegmentDeleted(seg)
		}

		return nil
	})
}

func importAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errMissingArgs
	}

	path := ctx.Args().First()

	var r io.Reader = config.Stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		r = f
	}

	return withEnv(ctx, func(e *env) error {
		res, err := e.p.Import(r)
		if err != nil {
			return err
		}

		report.Imported(res)

		return nil
	})
}

func exportCSVAction(ctx *cli.Context) error {
	return withEnv(ctx, func(e *env) error {
		path := ctx.Args().First()
		if path == "" || path == "-" {
			return e.p.ExportCSV(config.Stdout)
		}

		path = pathutil.WithExtension(path, ".csv")

		f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, osutil.FilePermission)
		if err != nil {
			return err
		}

		err = e.p.ExportCSV(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return err
		}

		report.Exported(path)

		return nil
	})
}

func exportPNGAction(ctx *cli.Context) error {
	return withEnv(ctx, func(e *env) error {
		path := pathutil.WithExtension(e.cfg.Export.PNGFile, ".png")

		f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, osutil.FilePermission)
		if err != nil {
			return err
		}

		err = e.p.ExportPNG(f, chartOptions(e.cfg))
		if cerr := f.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return err
		}

		report.Exported(path)

		return runExportCmd(e.cfg.Export.Cmd, path)
	})
}

func saveAction(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return errMissingArgs
	}

	return withEnv(ctx, func(e *env) error {
		c, err := e.p.SaveClock(ctx.Args().Get(0), ctx.Args().Get(1))
		if err != nil {
			return err
		}

		report.ClockSaved(c)

		return nil
	})
}

func clocksAction(ctx *cli.Context) error {
	f := library.Filter{Name: ctx.String(nameFlag.Name)}

	if since := ctx.String(sinceFlag.Name); since != "" {
		t, err := timeutil.DayStartFromStr(since, time.Now())
		if err != nil {
			return err
		}

		f.Since = t
	}

	return withEnv(ctx, func(e *env) error {
		clocks := e.p.Clocks(f)

		if ctx.Bool(jsonFlag.Name) {
			return printJSON(clocks)
		}

		if len(clocks) == 0 {
			report.Info(noClocksMsg)
			return nil
		}

		current, _ := e.p.CurrentClock()

		printClocksTable(config.Stdout, clocks, current.ID)

		return nil
	})
}

func loadAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errMissingArgs
	}

	return withEnv(ctx, func(e *env) error {
		c, err := e.p.LoadClock(ctx.Args().First())
		if err != nil {
			return err
		}

		report.ClockLoaded(c)

		return nil
	})
}

func deleteClockAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errMissingArgs
	}

	return withEnv(ctx, func(e *env) error {
		c, err := e.p.GetClock(ctx.Args().First())
		if err != nil {
			return err
		}

		printClocksTable(config.Stdout, []models.SavedClock{c}, "")

		if err := confirm(ctx, "The clock above will be deleted permanently"); err != nil {
			return err
		}

		if _, err := e.p.DeleteClock(c.ID); err != nil {
			return err
		}

		report.Info("deleted %s #%s", c.Name, c.EpisodeNumber)

		return nil
	})
}

func resetAction(ctx *cli.Context) error {
	return withEnv(ctx, func(e *env) error {
		if err := confirm(ctx, "The live clock will be replaced with the starter segments"); err != nil {
			return err
		}

		if _, err := e.p.Reset(); err != nil {
			return err
		}

		report.Info("clock reset")

		return nil
	})
}

// serveAction runs the HTTP server until interrupted.
func serveAction(ctx *cli.Context) error {
	return withEnv(ctx, func(e *env) error {
		sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(e.p, e.log, server.NewMetrics(), chartOptions(e.cfg))

		addr := e.cfg.Addr()

		pterm.Info.Printfln("serving the clock on http://%s (Ctrl-C to stop)", addr)

		return srv.ListenAndServe(sigCtx, addr)
	})
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HOURCLOCK_NO_COLOR is set
	if _, exists := os.LookupEnv(envHourclockNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(noColorFlag.Name) {
		disableStyling()
	}

	slog.DebugContext(ctx.Context, "starting hourclock")

	return nil
}
