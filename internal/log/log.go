// Package log provides logging utilities.
package log

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *uri.URI) slog.Value {
		if u == nil {
			return slog.StringValue("<nil>")
		}
		scheme, _ := u.Scheme()
		host, _ := u.Host()
		return slog.GroupValue(
			slog.String("uri", u.Render(&uri.RenderOptions{Redact: true})),
			slog.String("scheme", scheme),
			slog.String("host", host),
			slog.String("path", u.Path()),
			slog.Bool("absolute", u.IsAbsolute()),
		)
	}),
)

// Format is a log output format.
type Format string

const (
	FormatNone    Format = "none"
	FormatConsole Format = "console"
	FormatDev     Format = "dev"
	FormatJSON    Format = "json"
)

// ErrUnknownFormat is returned by [New] for an unsupported format.
const ErrUnknownFormat errorutil.Error = "unknown log format"

// New creates a logger writing to w in the given format.
func New(format Format, w io.Writer, level slog.Leveler) (*slog.Logger, error) {
	switch format {
	case FormatNone, "":
		return Noop, nil
	case FormatConsole:
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				Level:      level,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	case FormatJSON:
		return slog.New(newHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownFormat, "%q", format))
	}
}

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }
