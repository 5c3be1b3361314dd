package edit

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

// Class is the reference class of a URI.
type Class string

const (
	// ClassRelativePath is a path without leading slash, e.g. "a/b" or "example.org/page".
	ClassRelativePath Class = "relative-path"
	// ClassAbsolutePath is a path with leading slash, e.g. "/a/b".
	ClassAbsolutePath Class = "absolute-path"
	// ClassNetworkPath has an authority but no scheme, e.g. "//example.org/a".
	ClassNetworkPath Class = "network-path"
	// ClassAbsoluteURI has a scheme.
	ClassAbsoluteURI Class = "absolute-uri"
)

var classes = []Class{ClassRelativePath, ClassAbsolutePath, ClassNetworkPath, ClassAbsoluteURI}

// Classify returns the reference class of u.
func Classify(u *uri.URI) Class {
	switch {
	case !u.IsSchemeless():
		return ClassAbsoluteURI
	case u.IsAbsolute():
		return ClassNetworkPath
	case strings.HasPrefix(u.Path(), "/"):
		return ClassAbsolutePath
	default:
		return ClassRelativePath
	}
}

//go:generate go tool mockgen -source=editor.go -destination=observer_mock_test.go -package=edit_test

// Observer is notified about reference class changes made by an [Editor].
type Observer interface {
	ClassChanged(ctx context.Context, from, to Class)
}

// Options configure an [Editor].
type Options struct {
	// Logger is used to log applied operations and class transitions.
	// Default is a noop logger.
	Logger *slog.Logger
	// Observer is an optional class change observer.
	Observer Observer
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

func (o *Options) observer() Observer {
	if o == nil {
		return nil
	}
	return o.Observer
}

// Editor applies operations to a URI.
//
// The reference class of the URI is tracked by a state machine: every operation
// kind is a trigger that moves the machine to the class of the modified URI.
// Editor is not safe for concurrent use.
type Editor struct {
	uri *uri.URI
	sm  *stateless.StateMachine
	log *slog.Logger
	obs Observer
}

// NewEditor creates an editor of u. A nil u is replaced with an empty URI.
func NewEditor(u *uri.URI, opts *Options) *Editor {
	if u == nil {
		u = uri.New()
	}
	e := &Editor{
		uri: u,
		log: opts.logger(),
		obs: opts.observer(),
	}
	e.sm = stateless.NewStateMachine(Classify(u))
	for _, c := range classes {
		sc := e.sm.Configure(c)
		for _, k := range opKinds {
			sc.PermitDynamic(k, e.classify)
		}
	}
	e.sm.OnTransitioned(e.onTransitioned)
	return e
}

func (e *Editor) classify(context.Context, ...any) (stateless.State, error) {
	return Classify(e.uri), nil
}

func (e *Editor) onTransitioned(ctx context.Context, t stateless.Transition) {
	from, _ := t.Source.(Class)
	to, _ := t.Destination.(Class)
	if from == to {
		return
	}
	e.log.InfoContext(ctx, "URI class changed", "from", from, "to", to, "trigger", t.Trigger, "uri", e.uri)
	if e.obs != nil {
		e.obs.ClassChanged(ctx, from, to)
	}
}

// URI returns the edited URI.
func (e *Editor) URI() *uri.URI { return e.uri }

// Class returns the current reference class of the edited URI.
func (e *Editor) Class() Class {
	c, _ := e.sm.MustState().(Class)
	return c
}

// Apply applies the operations in order.
// It stops at the first failure, operations applied before it stay in effect.
func (e *Editor) Apply(ctx context.Context, ops ...Op) error {
	for _, op := range ops {
		if !op.Kind.isValid() {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidOp, "unknown component %q", op.Kind))
		}
		if err := ctx.Err(); err != nil {
			return errtrace.Wrap(err)
		}

		op.ApplyTo(e.uri)
		e.log.DebugContext(ctx, "edit operation applied",
			"op", op,
			"value", log.FmtValue(op.Redacted().Value, true),
			"uri", e.uri,
		)

		if err := e.sm.FireCtx(ctx, op.Kind, op); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
