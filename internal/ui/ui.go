package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/flighttime/internal/errors"
	"github.com/thomas-vilte/flighttime/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// PrintLine writes msg as a plain line. Report lines go through here so
// their text stays exactly as translated.
func PrintLine(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, Success.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, Warning.Sprint(msg))
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", separator, Info.Sprint(title), separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// MessageID returns the translation used to report err, chosen by the kind
// of AppError it wraps.
func MessageID(err error) string {
	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		return "error_unexpected"
	}

	switch {
	case errors.Is(appErr, domainErrors.ErrOpenInput):
		return "error_open_input"
	case appErr.Type == domainErrors.TypeIO:
		return "error_read_input"
	case appErr.Type == domainErrors.TypeSchema:
		return "error_schema"
	case appErr.Type == domainErrors.TypeSyntax:
		return "error_syntax"
	default:
		return "error_unexpected"
	}
}

// HandleAppError writes err as a single plain line prefixed by its kind.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	detail := err.Error()
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		detail = appErr.Detail()
	}

	PrintLine(w, t.GetMessage(MessageID(err), 0, map[string]interface{}{
		"Detail": detail,
	}))
}
