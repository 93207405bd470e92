// Package calc evaluates numy operations named at runtime. A Registry maps type names such
// as "u8" or "f64" to an evaluator holding every operation numy offers for that type,
// instantiated for the concrete type at compile time.
package calc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bearlytools/numy"
	"github.com/bearlytools/numy/internal/script"
)

var (
	// ErrUnknownType is returned for a type name that is neither built in nor an alias.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownOp is returned for an operation the type does not have.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArgs is returned when the arguments do not fit the operation.
	ErrArgs = errors.New("bad arguments")
	// ErrPanic is returned when an operation's precondition was violated, for example a
	// division by zero or the integer square root of a negative number.
	ErrPanic = errors.New("precondition violated")
)

// Result is the outcome of one evaluation.
type Result struct {
	Line int      `json:"line,omitzero"`
	Type string   `json:"type"`
	Op   string   `json:"op"`
	Args []string `json:"args,omitempty"`
	// Values are the results. A Checked* operation that failed has none.
	Values []string `json:"values,omitempty"`
	// OK is set for Checked* operations.
	OK *bool `json:"ok,omitempty"`
	// Overflow is set for Overflowing* operations.
	Overflow *bool `json:"overflow,omitempty"`
	// Error is set when the evaluation failed.
	Error string `json:"error,omitempty"`
}

// String renders r as one line of text.
func (r Result) String() string {
	b := strings.Builder{}
	b.WriteString(r.Type)
	b.WriteByte(' ')
	b.WriteString(r.Op)
	for _, a := range r.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	if r.Error != "" {
		b.WriteString(": error: ")
		b.WriteString(r.Error)
		return b.String()
	}
	b.WriteString(" = ")
	switch {
	case r.OK != nil && !*r.OK:
		b.WriteString("none")
	default:
		b.WriteString(strings.Join(r.Values, ", "))
	}
	if r.Overflow != nil {
		fmt.Fprintf(&b, " (overflow: %v)", *r.Overflow)
	}
	return b.String()
}

// Inspection describes a value's representation.
type Inspection struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Bits    uint32 `json:"bits"`
	Pattern string `json:"pattern"`
	BE      string `json:"be_bytes"`
	LE      string `json:"le_bytes"`
	// Class is the IEEE-754 class of a float.
	Class string `json:"class,omitempty"`
	// Sign is "negative" or "positive" for signed types, read from the sign bit for floats.
	Sign string `json:"sign,omitempty"`
}

// String renders i as aligned text lines.
func (i Inspection) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "type:     %s\n", i.Type)
	fmt.Fprintf(&b, "value:    %s\n", i.Value)
	fmt.Fprintf(&b, "bits:     %d\n", i.Bits)
	fmt.Fprintf(&b, "pattern:  %s\n", i.Pattern)
	fmt.Fprintf(&b, "be bytes: %s\n", i.BE)
	fmt.Fprintf(&b, "le bytes: %s\n", i.LE)
	if i.Class != "" {
		fmt.Fprintf(&b, "class:    %s\n", i.Class)
	}
	if i.Sign != "" {
		fmt.Fprintf(&b, "sign:     %s\n", i.Sign)
	}
	return b.String()
}

// Registry maps type names to evaluators.
type Registry struct {
	types   map[string]*evaluator
	aliases map[string]string
	log     *zap.Logger
}

// Option is an optional argument to New.
type Option func(r *Registry)

// WithLogger has the Registry log each evaluation at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

var builtinAliases = map[string]string{
	"int8": "i8", "int16": "i16", "int32": "i32", "int64": "i64", "rune": "i32",
	"uint8": "u8", "uint16": "u16", "uint32": "u32", "uint64": "u64", "byte": "u8",
	"float32": "f32", "float64": "f64",
}

// New returns a Registry holding every built in type plus the given aliases. An alias must
// point at a built in type name or a built in alias.
func New(aliases map[string]string, options ...Option) (*Registry, error) {
	r := &Registry{
		types: map[string]*evaluator{
			"i8":   newSigned("i8", numy.I8),
			"i16":  newSigned("i16", numy.I16),
			"i32":  newSigned("i32", numy.I32),
			"i64":  newSigned("i64", numy.I64),
			"int":  newSigned("int", numy.Int),
			"u8":   newUnsigned("u8", numy.I8),
			"u16":  newUnsigned("u16", numy.I16),
			"u32":  newUnsigned("u32", numy.I32),
			"u64":  newUnsigned("u64", numy.I64),
			"uint": newUnsigned("uint", numy.Int),
			"f32":  newFloat("f32", numy.F32),
			"f64":  newFloat("f64", numy.F64),
		},
		aliases: map[string]string{},
		log:     zap.NewNop(),
	}
	for k, v := range builtinAliases {
		r.aliases[k] = v
	}
	for k, v := range aliases {
		target := v
		if t, ok := builtinAliases[v]; ok {
			target = t
		}
		if _, ok := r.types[target]; !ok {
			return nil, errors.Wrapf(ErrUnknownType, "alias %q points at %q", k, v)
		}
		if _, ok := r.types[k]; ok {
			return nil, errors.Errorf("alias %q would hide a built in type", k)
		}
		r.aliases[k] = target
	}
	for _, o := range options {
		o(r)
	}
	return r, nil
}

// Types returns the built in type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for k := range r.types {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Ops returns the operation names of type typ, sorted.
func (r *Registry) Ops(typ string) ([]string, error) {
	e, err := r.lookup(typ)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(e.ops))
	for k := range e.ops {
		names = append(names, k)
	}
	slices.Sort(names)
	return names, nil
}

func (r *Registry) lookup(typ string) (*evaluator, error) {
	name := strings.ToLower(typ)
	if a, ok := r.aliases[name]; ok {
		name = a
	}
	e, ok := r.types[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", typ)
	}
	return e, nil
}

// Eval evaluates op on type typ with args.
func (r *Registry) Eval(typ, op string, args []string) (Result, error) {
	res := Result{Type: typ, Op: op, Args: args}
	e, err := r.lookup(typ)
	if err != nil {
		return res, err
	}
	out, err := e.eval(strings.ToLower(op), args)
	if err != nil {
		r.log.Debug("evaluation failed", zap.String("type", e.name), zap.String("op", op), zap.Strings("args", args), zap.Error(err))
		return res, err
	}
	res.Values, res.OK, res.Overflow = out.values, out.ok, out.overflow
	r.log.Debug("evaluated", zap.String("type", e.name), zap.String("op", op), zap.Strings("args", args), zap.Strings("values", out.values))
	return res, nil
}

// EvalLine evaluates a script line. Errors are recorded in the Result.
func (r *Registry) EvalLine(l script.Line) Result {
	res, err := r.Eval(l.Type, l.Op, l.Args)
	res.Line = l.LineNum
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// Inspect describes value as type typ.
func (r *Registry) Inspect(typ, value string) (Inspection, error) {
	e, err := r.lookup(typ)
	if err != nil {
		return Inspection{}, err
	}
	in, err := e.inspect(value)
	if err != nil {
		return Inspection{}, errors.Wrapf(err, "inspecting %q as %s", value, e.name)
	}
	return in, nil
}

// evaluator holds the operations of one concrete type.
type evaluator struct {
	name    string
	ops     map[string]opFunc
	inspect func(value string) (Inspection, error)
}

func (e *evaluator) eval(op string, args []string) (out output, err error) {
	f, ok := e.ops[op]
	if !ok {
		return output{}, errors.Wrapf(ErrUnknownOp, "%s has no operation %q", e.name, op)
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrPanic, "%s %s: %v", e.name, op, r)
		}
	}()
	return f(args)
}
