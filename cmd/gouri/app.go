package main

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/ghettovoice/gouri/edit"
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/util"
	"github.com/ghettovoice/gouri/uri"
)

const errUsage errorutil.Error = "invalid usage"

type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    log.Noop,
	}
	return &cli.Command{
		Name:      "gouri",
		Usage:     "inspect and edit URIs",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: none, console, dev or json",
				Value:   string(log.FormatNone),
				Sources: cli.EnvVars("GOURI_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "minimal log level: debug, info, warn or error",
				Value:   slog.LevelInfo.String(),
				Sources: cli.EnvVars("GOURI_LOG_LEVEL"),
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "print URI components",
				ArgsUsage: "URI...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Usage:   "print components as JSON lines",
						Sources: cli.EnvVars("GOURI_JSON"),
					},
				},
				Action: a.parse,
			},
			{
				Name:            "edit",
				Usage:           "apply edit operations (key=value, -key, absolute, relative) to a URI",
				ArgsUsage:       "URI OP...",
				// "-key" operations must not be taken as flags
				SkipFlagParsing: true,
				Action:          a.edit,
			},
			{
				Name:      "change-scheme",
				Usage:     "replace the scheme of every URI",
				ArgsUsage: "SCHEME URI...",
				Action:    a.changeScheme,
			},
		},
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(util.TrimSP(cmd.String("log-level")))); err != nil {
		return ctx, errtrace.Wrap(errorutil.NewWrapperError(errUsage, err))
	}
	logger, err := log.New(log.Format(util.LCase(util.TrimSP(cmd.String("log-format")))), a.stderr, lvl)
	if err != nil {
		return ctx, errtrace.Wrap(errorutil.NewWrapperError(errUsage, err))
	}
	a.log = logger
	return ctx, nil
}

type components struct {
	URI      string  `json:"uri"`
	Scheme   *string `json:"scheme,omitempty"`
	User     *string `json:"user,omitempty"`
	Pass     *string `json:"pass,omitempty"`
	Host     *string `json:"host,omitempty"`
	Port     *uint64 `json:"port,omitempty"`
	Path     string  `json:"path"`
	Query    *string `json:"query,omitempty"`
	Fragment *string `json:"fragment,omitempty"`
	Absolute bool    `json:"absolute"`
	Valid    bool    `json:"valid"`
}

func componentsOf(u *uri.URI) components {
	return components{
		URI:      u.String(),
		Scheme:   ptrOf(u.Scheme()),
		User:     ptrOf(u.User()),
		Pass:     ptrOf(u.Pass()),
		Host:     ptrOf(u.Host()),
		Port:     ptrOf(u.Port()),
		Path:     u.Path(),
		Query:    ptrOf(u.Query()),
		Fragment: ptrOf(u.Fragment()),
		Absolute: u.IsAbsolute(),
		Valid:    u.IsValid(),
	}
}

func ptrOf[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

func (a *app) parse(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(errUsage, "parse requires at least one URI"))
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(a.stdout)
		for _, s := range cmd.Args().Slice() {
			u := uri.Parse(s)
			a.log.DebugContext(ctx, "URI parsed", "uri", u)
			if err := enc.Encode(componentsOf(u)); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	}

	for _, s := range cmd.Args().Slice() {
		u := uri.Parse(s)
		a.log.DebugContext(ctx, "URI parsed", "uri", u)
		if err := writeComponents(a.stdout, componentsOf(u)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func writeComponents(w io.Writer, c components) error {
	lines := []struct {
		key string
		val any
	}{
		{"scheme", c.Scheme},
		{"user", c.User},
		{"pass", c.Pass},
		{"host", c.Host},
		{"port", c.Port},
		{"path", &c.Path},
		{"query", c.Query},
		{"fragment", c.Fragment},
	}

	if _, err := fmt.Fprintf(w, "%s\n", c.URI); err != nil {
		return errtrace.Wrap(err)
	}
	for _, l := range lines {
		var err error
		switch v := l.val.(type) {
		case *string:
			if v != nil {
				_, err = fmt.Fprintf(w, "  %-10s%q\n", l.key+":", *v)
			}
		case *uint64:
			if v != nil {
				_, err = fmt.Fprintf(w, "  %-10s%d\n", l.key+":", *v)
			}
		}
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	_, err := fmt.Fprintf(w, "  %-10s%t\n  %-10s%t\n", "absolute:", c.Absolute, "valid:", c.Valid)
	return errtrace.Wrap(err)
}

type classLogger struct {
	log *slog.Logger
}

func (o classLogger) ClassChanged(ctx context.Context, from, to edit.Class) {
	o.log.DebugContext(ctx, "edited URI reference class", "from", from, "to", to)
}

func (a *app) edit(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return errtrace.Wrap(errorutil.NewWrapperError(errUsage, "edit requires a URI and at least one operation"))
	}

	args := cmd.Args().Slice()
	ops, err := edit.ParseOps(args[1:]...)
	if err != nil {
		return errtrace.Wrap(err)
	}

	e := edit.NewEditor(uri.Parse(args[0]), &edit.Options{
		Logger:   a.log,
		Observer: classLogger{a.log},
	})
	if err := e.Apply(ctx, ops...); err != nil {
		return errtrace.Wrap(err)
	}

	_, err = fmt.Fprintln(a.stdout, e.URI())
	return errtrace.Wrap(err)
}

func (a *app) changeScheme(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return errtrace.Wrap(errorutil.NewWrapperError(errUsage, "change-scheme requires a scheme and at least one URI"))
	}

	args := cmd.Args().Slice()
	scheme := args[0]
	for _, s := range args[1:] {
		res := uri.ChangeScheme(s, scheme)
		a.log.DebugContext(ctx, "URI scheme changed", "scheme", scheme, "uri", uri.From(res))
		if _, err := fmt.Fprintln(a.stdout, res); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
