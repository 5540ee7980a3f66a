package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/formfield/internal/config"
	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/formfield/internal/logger"
	"github.com/alexisbeaulieu97/formfield/internal/ports"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
	"github.com/alexisbeaulieu97/formfield/internal/tui"
)

type previewOptions struct {
	ConfigPath string
	FieldID    string
	Verbose    bool
}

var (
	previewCmdRunner = runPreview
	runProgram       = func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m).Run()
	}
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview one field of a form document",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal, use render instead")
			}

			return previewCmdRunner(cmd.Context(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to form document")
	cmd.Flags().StringVar(&opts.FieldID, "field", "", "ID of the field to preview (default: first field)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPreview(ctx context.Context, errOut io.Writer, opts previewOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := config.ParseDocument(opts.ConfigPath)
	if err != nil {
		return err
	}

	field := doc.Fields[0]
	if opts.FieldID != "" {
		var ok bool
		field, ok = doc.FieldByID(opts.FieldID)
		if !ok {
			return fmt.Errorf("field %q not found in %s", opts.FieldID, opts.ConfigPath)
		}
	}

	th, err := config.BuildTheme(doc.Theme)
	if err != nil {
		return fmt.Errorf("build theme: %w", err)
	}

	// The program owns the terminal, so entries are held until it exits.
	var log ports.Logger = logger.Nop()
	if opts.Verbose {
		sink, err := newLogger(true, errOut)
		if err != nil {
			return err
		}
		buffer := logger.NewBuffer(0)
		defer buffer.Flush(sink)
		log = buffer
	}

	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	publisher := events.NewLoggingPublisher(log)

	strs := doc.Strings.WithDefaults()
	state := formfield.New(th, config.FieldOptions(ctx, field, strs, log))
	sub := events.Forward(ctx, field.ID, state, publisher)
	defer sub.Unsubscribe()

	value := ""
	if field.Value != nil {
		value = *field.Value
	}

	model := tui.NewModel(tui.PreviewOptions{
		ID:          field.ID,
		State:       state,
		Themes:      previewThemes(th),
		Value:       value,
		Placeholder: field.Placeholder,
		Limit:       field.Limit,
		ClearButton: field.ClearButton,
		ClearTitle:  strs.Clear,
		HelperIcon:  field.HelperIcon,
	})
	defer model.Close()

	_, err = runProgram(model)
	return err
}

// previewThemes puts the configured theme first, followed by the other
// built-in themes.
func previewThemes(configured theme.Theme) []theme.Theme {
	themes := []theme.Theme{configured}
	for _, name := range theme.Names() {
		if name == configured.Name {
			continue
		}
		if th, ok := theme.Named(name); ok {
			themes = append(themes, th)
		}
	}
	return themes
}
