package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer // defaults to os.Stdout
	Err io.Writer // defaults to os.Stderr
}

// NewFormatter builds a formatter from the command's --json/--quiet flags and
// its configured output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Printf writes human-readable output, downsampling styled text to what the
// output stream supports
func (f *OutputFormatter) Printf(format string, args ...any) {
	_, _ = lipgloss.Fprintf(f.out(), format, args...)
}

// Println writes a line of human-readable output
func (f *OutputFormatter) Println(args ...any) {
	_, _ = lipgloss.Fprintln(f.out(), args...)
}

// ID prints a bare ID, the only output of quiet mode
func (f *OutputFormatter) ID(id int) {
	f.Printf("%d\n", id)
}

// Machine reports whether output is for scripts (--json or --quiet)
func (f *OutputFormatter) Machine() bool {
	return f.JSON || f.Quiet
}

// Success writes a successful result in machine mode: the ID in quiet mode,
// otherwise {"success": true, key: data}
func (f *OutputFormatter) Success(key string, data interface{}) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			f.ID(idGetter.GetID())
			return nil
		}
	}

	return f.JSONOut(map[string]interface{}{
		"success": true,
		key:       data,
	})
}

// JSONOut encodes v as a single JSON document
func (f *OutputFormatter) JSONOut(v interface{}) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.JSONOut(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	_, _ = fmt.Fprintf(f.err(), "❌ Error: %s\n", message)
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.err(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it marked as reported
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Reported(err)
}
