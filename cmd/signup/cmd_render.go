package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/orchestrator"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
)

var (
	renderOutput string
	renderWidth  int
	renderEmail  string
	renderName   string
)

// renderCmd writes the HTML page to a file or stdout.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the sign-up page as static HTML",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (stdout if empty)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Viewport width in pixels used to pick the layout")
	renderCmd.Flags().StringVar(&renderEmail, "email", "", "Prefill the email field")
	renderCmd.Flags().StringVar(&renderName, "renderer", "vanilla", "Renderer to use: vanilla or tui")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	themeCfg, err := resolveTheme()
	if err != nil {
		return err
	}
	catalog, err := translator()
	if err != nil {
		return err
	}

	registry, err := newRegistry(tui.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	state := model.NewFormState()
	state.SetEmail(renderEmail)

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithTranslator(catalog),
		orchestrator.WithLogger(logger),
	)
	output, err := gen.Generate(ctx, orchestrator.Request{
		State:    &state,
		Width:    renderWidth,
		Renderer: renderName,
		RenderOptions: render.RenderOptions{
			Locale:      cfg.Locale,
			Theme:       themeCfg,
			AssetPrefix: cfg.AssetPrefix,
			Breakpoint:  cfg.Breakpoint,
		},
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", renderName, err)
	}

	if renderOutput != "" {
		if err := os.WriteFile(renderOutput, output, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("page written", zap.String("path", renderOutput), zap.Int("bytes", len(output)))
		return nil
	}
	_, err = cmd.OutOrStdout().Write(output)
	return err
}
