package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	formerrors "github.com/alexisbeaulieu97/formfield/pkg/errors"
)

const exampleForm = "../../examples/form.yaml"

func TestRenderCommandPrintsEveryField(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := runRender(context.Background(), out, errOut, renderOptions{ConfigPath: exampleForm, Width: 50})
	require.NoError(t, err)

	output := out.String()
	require.Contains(t, output, "Account signup")
	require.Contains(t, output, "Email *")
	require.Contains(t, output, "ada@example.com")
	require.Contains(t, output, "[clear]")
	require.Contains(t, output, "15/40")
	require.Contains(t, output, "3/16")
	require.Contains(t, output, "0/120")
	require.Contains(t, output, "Tell us about yourself")
	require.Contains(t, output, "a11y: Email, required")
	require.Contains(t, output, "a11y: Referral code")
	require.Contains(t, output, "a11y: Terms and conditions, required")
	require.Empty(t, errOut.String(), "info level hides recomputation logs")
}

func TestRenderCommandWrapsLongTitles(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, runRender(context.Background(), out, &bytes.Buffer{}, renderOptions{ConfigPath: exampleForm, Width: 40}))

	for _, line := range strings.Split(out.String(), "\n") {
		require.NotContains(t, line, "A short introduction shown on your public profile page")
	}
	require.Contains(t, out.String(), "A short introduction")
}

func TestRenderCommandVerboseLogsEvents(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := runRender(context.Background(), out, errOut, renderOptions{
		ConfigPath: exampleForm,
		Feedback:   "error",
		Verbose:    true,
	})
	require.NoError(t, err)

	logs := errOut.String()
	require.Contains(t, logs, "form.loaded")
	require.Contains(t, logs, "field.changed")
	require.Contains(t, logs, "form.rendered")
}

func TestRenderCommandRejectsUnknownFeedback(t *testing.T) {
	err := runRender(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, renderOptions{ConfigPath: exampleForm, Feedback: "warning"})
	require.ErrorContains(t, err, "invalid --feedback")
}

func TestRenderCommandReportsInvalidDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nfields:\n  - id: Bad ID\n"), 0o600))

	err := runRender(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, renderOptions{ConfigPath: path})

	var problems formerrors.ValidationErrors
	require.ErrorAs(t, err, &problems)
	require.Equal(t, "fields[0].id", problems[0].Field)
}

func TestRenderCommandRequiresConfig(t *testing.T) {
	originalRunner := renderCmdRunner
	t.Cleanup(func() { renderCmdRunner = originalRunner })

	called := false
	renderCmdRunner = func(context.Context, io.Writer, io.Writer, renderOptions) error {
		called = true
		return nil
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "-c", filepath.Join(t.TempDir(), "missing.yaml")})

	err := root.Execute()
	require.ErrorContains(t, err, "config file does not exist")
	require.False(t, called)
}

func TestRenderCommandPassesFlags(t *testing.T) {
	originalRunner := renderCmdRunner
	t.Cleanup(func() { renderCmdRunner = originalRunner })

	var got renderOptions
	renderCmdRunner = func(_ context.Context, _ io.Writer, _ io.Writer, opts renderOptions) error {
		got = opts
		return nil
	}

	root := newRootCmd()
	root.SetArgs([]string{"render", "-v", "-c", exampleForm, "--feedback", "error", "--width", "30"})
	require.NoError(t, root.Execute())

	require.Equal(t, renderOptions{ConfigPath: exampleForm, Feedback: "error", Width: 30, Verbose: true}, got)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderCommandReportsWriteFailures(t *testing.T) {
	err := runRender(context.Background(), failingWriter{}, &bytes.Buffer{}, renderOptions{ConfigPath: exampleForm})

	var renderErr *formerrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "email", renderErr.FieldID)
	require.ErrorContains(t, err, "disk full")
}
