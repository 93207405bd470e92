// Package script parses numy evaluation scripts. A script holds one evaluation per line:
//
//	// Comments start with //, blank lines are ignored.
//	u8 checked_sub 5 10
//	i8 wrapping_neg -128
//	f64 total_cmp 1 nan // trailing comments are allowed
//
// The first word names a type, the second an operation and the rest are its arguments.
// The parser does not know which types or operations exist, that is up to the evaluator.
package script

import (
	"strings"

	"github.com/gostdlib/base/context"
	"github.com/johnsiilver/halfpike"

	"github.com/bearlytools/numy/internal/conversions"
)

// Line is a single evaluation.
type Line struct {
	// LineNum is the line in the script, starting at 1.
	LineNum int
	// Type is the type name as written.
	Type string
	// Op is the operation name as written.
	Op string
	// Args are the operation arguments.
	Args []string
}

// Script is a parsed script. It implements halfpike's parse object.
type Script struct {
	Lines []Line
}

// Parse parses a script held in content.
func Parse(ctx context.Context, content string) (*Script, error) {
	s := &Script{}
	if err := halfpike.Parse(ctx, content, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseBytes parses a script held in b without copying it. b must not be modified while
// parsing.
func ParseBytes(ctx context.Context, b []byte) (*Script, error) {
	return Parse(ctx, conversions.ByteSlice2String(b))
}

// Start implements halfpike's Start.
func (s *Script) Start(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	return s.parseLine
}

func (s *Script) parseLine(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	for {
		if err := ctx.Err(); err != nil {
			return p.Errorf("%w", err)
		}

		line := p.Next()
		// halfpike counts lines from 0.
		num := line.LineNum + 1
		w := words(line)
		switch len(w) {
		case 0:
		case 1:
			return p.Errorf("[Line %d] error: %q has a type but no operation, want '<type> <op> [args...]'", num, w[0])
		default:
			l := Line{LineNum: num, Type: w[0], Op: w[1]}
			if len(w) > 2 {
				l.Args = w[2:]
			}
			s.Lines = append(s.Lines, l)
		}
		if p.EOF(line) {
			return nil
		}
	}
}

// Validate implements halfpike's Validate.
func (s *Script) Validate() error {
	return nil
}

// words returns the text of a line up to any comment.
func words(line halfpike.Line) []string {
	var w []string
	for _, item := range line.Items {
		v := item.Val
		if v == "\n" {
			continue
		}
		i := strings.Index(v, "//")
		if i >= 0 {
			v = v[:i]
		}
		if v != "" {
			w = append(w, v)
		}
		if i >= 0 {
			return w
		}
	}
	return w
}
