package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/modal/internal/dialog"
	"github.com/justinpbarnett/modal/internal/lang"
	"github.com/justinpbarnett/modal/internal/ui"
	"github.com/justinpbarnett/modal/internal/ui/image"
	"github.com/justinpbarnett/modal/internal/ui/layout"
)

var (
	headless     bool
	keyScript    string
	screenWidth  int
	screenHeight int
	dumpScreen   bool
)

func addSessionFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.BoolVar(&headless, "headless", false, "run off-screen, driven by --keys")
	f.StringVar(&keyScript, "keys", "", "comma separated keys for --headless, e.g. down,enter")
	f.IntVar(&screenWidth, "width", 80, "screen width for --headless")
	f.IntVar(&screenHeight, "height", 24, "screen height for --headless")
	f.BoolVar(&dumpScreen, "dump", false, "print the final --headless screen to stderr")
}

// sessionFunc runs dialogs on e and returns the lines to print.
type sessionFunc func(ctx context.Context, e *dialog.Engine) ([]string, error)

func engineOptions() ([]dialog.EngineOption, error) {
	strings, err := lang.Load(cfg.Lang.Language, cfg.Lang.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading strings: %w", err)
	}
	metrics := layout.ForName(cfg.UI.Metrics)
	if cfg.UI.MaxLineLength > 0 {
		metrics.MaxLineLength = cfg.UI.MaxLineLength
	}
	return []dialog.EngineOption{
		dialog.WithAssets(image.NewLoader(image.Layered(cfg.Assets.Dir), image.WithZoom(cfg.Assets.Zoom))),
		dialog.WithStrings(strings),
		dialog.WithMetrics(metrics),
		dialog.WithPacer(dialog.NewPacer(cfg.UI.FrameRate)),
		dialog.WithDoubleClickFrames(cfg.UI.DoubleClickFrames),
		dialog.WithHints(true),
	}, nil
}

// appOptions maps the ui config onto the terminal program.
func appOptions() []ui.AppOption {
	var opts []ui.AppOption
	if cfg.UI.FocusLock {
		opts = append(opts, ui.WithFocusLock())
	}
	return opts
}

func runSession(ctx context.Context, fn sessionFunc) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}

	var out []string
	if headless {
		keys, err := ui.ParseKeys(keyScript)
		if err != nil {
			return err
		}
		disp, in := ui.NewHeadless(screenWidth, screenHeight, keys)
		e := dialog.NewEngine(disp, in, append(opts, dialog.WithPacer(dialog.Unpaced{}))...)
		out, err = fn(ctx, e)
		if dumpScreen {
			disp.Out = os.Stderr
			if derr := disp.Dump(); derr != nil && err == nil {
				err = derr
			}
		}
		if err != nil {
			return err
		}
	} else {
		mouse := cfg.UI.Mouse == nil || *cfg.UI.Mouse
		err := ui.Run(ctx, func(ctx context.Context, s ui.Session) error {
			s.Input.SetKeyHoldFrames(cfg.UI.KeyHoldFrames)
			var err error
			out, err = fn(ctx, dialog.NewEngine(s.Display, s.Input, opts...))
			return err
		}, mouse, appOptions()...)
		if err != nil {
			return err
		}
	}

	for _, line := range out {
		fmt.Println(line)
	}
	return nil
}
