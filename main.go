package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leonelquinteros/gotext"

	"smz3/pkg/game/fill"
	"smz3/pkg/game/renderer"
	"smz3/pkg/game/renderer/tui"
)

func initGotext(lib, lang string) {
	gotext.Configure(lib, lang, "default")
}

// newLogger installs a text handler on stderr; verbose lowers the level to
// debug so retries and metrics show up.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	renderer.SetRenderer(tui.New(os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		var fatal *fill.FatalGenerationFailure
		if errors.As(err, &fatal) {
			fmt.Fprintln(os.Stderr, renderer.StyleText(fmt.Sprintf(gotext.Get("CLI_GENERATE_FAILED"), fatal.Attempts), renderer.StyleDenied))
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, renderer.StyleText(err.Error(), renderer.StyleDenied))
		os.Exit(1)
	}
}
