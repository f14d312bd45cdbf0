package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-signup/pkg/orchestrator"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
)

const tuiRendererName = "tui"

var (
	promptFormat  string
	promptColumns int

	// promptDriver replaces the survey driver in tests.
	promptDriver tui.PromptDriver
)

// promptCmd fills the form in interactively.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in the sign-up form from the terminal",
	RunE:  runPrompt,
}

func init() {
	promptCmd.Flags().StringVar(&promptFormat, "format", string(tui.OutputFormatJSON), "Output format: json, form or pretty")
	promptCmd.Flags().IntVar(&promptColumns, "compact-columns", tui.DefaultCompactColumns, "Terminal width at or below which the banner is skipped")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format := tui.OutputFormat(promptFormat)
	switch format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
	default:
		return fmt.Errorf("unknown output format %q", promptFormat)
	}

	catalog, err := translator()
	if err != nil {
		return err
	}

	registry, err := newRegistry(
		tui.WithPromptDriver(promptDriver),
		tui.WithOutput(cmd.ErrOrStderr()),
		tui.WithOutputFormat(format),
		tui.WithCompactColumns(promptColumns),
		tui.WithTheme(tui.Theme{ErrorPrefix: "! "}),
	)
	if err != nil {
		return err
	}

	opts := render.RenderOptions{Translator: catalog}
	if cmd.Flags().Changed("locale") {
		opts.Locale = cfg.Locale
	}

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(logger),
	)
	out, err := gen.Generate(ctx, orchestrator.Request{
		Renderer:      tuiRendererName,
		RenderOptions: opts,
	})
	if errors.Is(err, tui.ErrAborted) {
		return errors.New("aborted")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
