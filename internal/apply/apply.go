package apply

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonata "github.com/blues/jsonata-go"
)

// Evaluator is a compiled transformation.
type Evaluator struct {
	expr *jsonata.Expr
}

// Compile parses a transformation. Block comments, such as the generated
// header, are removed first.
func Compile(expression string) (*Evaluator, error) {
	body := strings.TrimSpace(StripComments(expression))
	if body == "" {
		return nil, errors.New("empty transformation")
	}

	expr, err := jsonata.Compile(body)
	if err != nil {
		return nil, fmt.Errorf("compiling transformation: %w", err)
	}

	return &Evaluator{expr: expr}, nil
}

// Evaluate runs the transformation over doc. An expression that selects
// nothing yields nil.
func (e *Evaluator) Evaluate(doc any) (any, error) {
	out, err := e.expr.Eval(doc)
	if errors.Is(err, jsonata.ErrUndefined) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("evaluating transformation: %w", err)
	}

	return out, nil
}

// EvaluateJSON decodes data, runs the transformation and encodes the result
// with two-space indentation.
func (e *Evaluator) EvaluateJSON(data []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding input document: %w", err)
	}

	out, err := e.Evaluate(doc)
	if err != nil {
		return nil, err
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}

	return append(encoded, '\n'), nil
}

// Evaluate compiles expression and runs it over doc.
func Evaluate(expression string, doc any) (any, error) {
	e, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(doc)
}

// StripComments removes /* ... */ comments outside string literals and
// back-quoted names. An unterminated comment runs to the end.
func StripComments(expr string) string {
	var (
		sb    strings.Builder
		quote rune
	)

	runes := []rune(expr)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case quote != 0:
			sb.WriteRune(r)

			if r == '\\' && quote != '`' && i+1 < len(runes) {
				i++
				sb.WriteRune(runes[i])
			} else if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
			sb.WriteRune(r)
		case r == '/' && i+1 < len(runes) && runes[i+1] == '*':
			end := strings.Index(string(runes[i+2:]), "*/")
			if end < 0 {
				return sb.String()
			}

			i += 2 + len([]rune(string(runes[i+2:])[:end])) + 1
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
