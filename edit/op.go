// Package edit applies textual edit operations to URIs and tracks how the
// reference class of the URI changes along the way.
package edit

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/uri"
)

type Error = errorutil.Error

// ErrInvalidOp is returned for malformed edit operations.
const ErrInvalidOp Error = "invalid edit operation"

// OpKind names the URI component an operation changes.
type OpKind string

const (
	OpScheme   OpKind = "scheme"
	OpUser     OpKind = "user"
	OpPass     OpKind = "pass"
	OpHost     OpKind = "host"
	OpPort     OpKind = "port"
	OpPath     OpKind = "path"
	OpQuery    OpKind = "query"
	OpFragment OpKind = "fragment"
	OpAbsolute OpKind = "absolute"
	OpRelative OpKind = "relative"
)

var opKinds = []OpKind{
	OpScheme, OpUser, OpPass, OpHost, OpPort, OpPath, OpQuery, OpFragment, OpAbsolute, OpRelative,
}

func (k OpKind) isFlag() bool { return k == OpAbsolute || k == OpRelative }

func (k OpKind) isValid() bool { return slices.Contains(opKinds, k) }

// Op is a single edit operation.
// Value is passed to the URI setter as is, nil unsets the component.
// Flag operations (absolute, relative) ignore the value.
type Op struct {
	Kind  OpKind
	Value any
}

// Set returns an operation setting the component to v.
func Set(kind OpKind, v any) Op { return Op{Kind: kind, Value: v} }

// Unset returns an operation unsetting the component.
func Unset(kind OpKind) Op { return Op{Kind: kind} }

// ParseOp parses an operation from its textual form:
//   - "key=value" sets the component to the string value;
//   - "-key" unsets the component;
//   - "absolute" and "relative" switch the locality.
//
// The key is one of the [OpKind] constants.
func ParseOp(s string) (Op, error) {
	if key, ok := strings.CutPrefix(s, "-"); ok {
		k := OpKind(key)
		if !k.isValid() || k.isFlag() {
			return Op{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidOp, "can not unset %q", key))
		}
		return Unset(k), nil
	}

	key, val, hasVal := strings.Cut(s, "=")
	k := OpKind(key)
	switch {
	case !k.isValid():
		return Op{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidOp, "unknown component %q", key))
	case k.isFlag() && hasVal:
		return Op{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidOp, "%q takes no value", key))
	case !k.isFlag() && !hasVal:
		return Op{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidOp, "%q requires a value", key))
	case k.isFlag():
		return Op{Kind: k}, nil
	default:
		return Set(k, val), nil
	}
}

// ParseOps parses every operation, all failures are reported together.
func ParseOps(ss ...string) ([]Op, error) {
	ops := make([]Op, 0, len(ss))
	var errs []error
	for i, s := range ss {
		op, err := ParseOp(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("op #%d: %w", i+1, err)) //errtrace:skip
			continue
		}
		ops = append(ops, op)
	}
	if err := errorutil.JoinPrefix("parse edit operations", errs...); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ops, nil
}

// ApplyTo applies the operation to u.
func (op Op) ApplyTo(u *uri.URI) {
	switch op.Kind {
	case OpScheme:
		u.SetScheme(op.Value)
	case OpUser:
		u.SetUser(op.Value)
	case OpPass:
		u.SetPass(op.Value)
	case OpHost:
		u.SetHost(op.Value)
	case OpPort:
		u.SetPort(op.Value)
	case OpPath:
		u.SetPath(op.Value)
	case OpQuery:
		u.SetQuery(op.Value)
	case OpFragment:
		u.SetFragment(op.Value)
	case OpAbsolute:
		u.SetAbsolute()
	case OpRelative:
		u.SetRelative()
	}
}

func (op Op) String() string {
	switch {
	case op.Kind.isFlag():
		return string(op.Kind)
	case op.Value == nil:
		return "-" + string(op.Kind)
	default:
		return string(op.Kind) + "=" + fmt.Sprint(op.Value)
	}
}

const redacted = "xxxxx"

// Redacted returns a copy of the operation with a password value replaced by "xxxxx".
func (op Op) Redacted() Op {
	if op.Kind == OpPass && op.Value != nil {
		op.Value = redacted
	}
	return op
}

// LogValue implements [slog.LogValuer], passwords are redacted.
func (op Op) LogValue() slog.Value { return slog.StringValue(op.Redacted().String()) }
