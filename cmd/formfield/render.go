package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/formfield/internal/config"
	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/formfield/internal/ports"
	"github.com/alexisbeaulieu97/formfield/internal/tui"
	formerrors "github.com/alexisbeaulieu97/formfield/pkg/errors"
)

const (
	defaultRenderWidth = 60
	maxRenderWidth     = 100
)

type renderOptions struct {
	ConfigPath string
	Feedback   string
	Width      int
	Verbose    bool
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print every field of a form document",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			return renderCmdRunner(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to form document")
	cmd.Flags().StringVar(&opts.Feedback, "feedback", "", "Force a feedback state (default, error) on every field")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Field width in cells (default: terminal width)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runRender(ctx context.Context, out, errOut io.Writer, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := config.ParseDocument(opts.ConfigPath)
	if err != nil {
		return err
	}

	var forced *formfield.FeedbackState
	if opts.Feedback != "" {
		state, err := formfield.ParseFeedbackState(opts.Feedback)
		if err != nil {
			return fmt.Errorf("invalid --feedback: %w", err)
		}
		forced = &state
	}

	th, err := config.BuildTheme(doc.Theme)
	if err != nil {
		return fmt.Errorf("build theme: %w", err)
	}

	log, err := newLogger(opts.Verbose, errOut)
	if err != nil {
		return err
	}

	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	publisher := events.NewLoggingPublisher(log)
	_ = publisher.Publish(ctx, events.NewEvent(ports.EventFormLoaded, map[string]interface{}{
		"path":   opts.ConfigPath,
		"form":   doc.Name,
		"theme":  th.Name,
		"fields": len(doc.Fields),
	}))

	width := resolveWidth(opts.Width, out)
	strs := doc.Strings.WithDefaults()

	if doc.Name != "" {
		fmt.Fprintf(out, "%s\n\n", doc.Name)
	}

	for _, field := range doc.Fields {
		state := formfield.New(th, config.FieldOptions(ctx, field, strs, log))
		sub := events.Forward(ctx, field.ID, state, publisher)
		if forced != nil {
			state.SetFeedbackState(*forced)
		}
		sub.Unsubscribe()

		view := tui.RenderField(tui.Field{
			Snapshot:          state.Snapshot(),
			Control:           controlText(field),
			ShowClear:         field.ClearButton && field.Value != nil && *field.Value != "",
			ClearTitle:        strs.Clear,
			HelperIcon:        field.HelperIcon,
			Width:             width,
			ShowAccessibility: true,
		})
		if _, err := fmt.Fprintf(out, "%s\n\n", view); err != nil {
			return formerrors.NewRenderError(field.ID, err)
		}
	}

	_ = publisher.Publish(ctx, events.NewEvent(ports.EventFormRendered, map[string]interface{}{
		"form":   doc.Name,
		"fields": len(doc.Fields),
		"width":  width,
	}))

	return nil
}

// controlText is the static stand-in for the wrapped control: the value,
// else the placeholder.
func controlText(field config.Field) string {
	switch {
	case field.Value != nil && *field.Value != "":
		return *field.Value
	case field.Placeholder != "":
		return field.Placeholder
	default:
		return ""
	}
}

func resolveWidth(requested int, out io.Writer) int {
	if requested > 0 {
		return requested
	}
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return defaultRenderWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultRenderWidth
	}
	return min(width, maxRenderWidth)
}
