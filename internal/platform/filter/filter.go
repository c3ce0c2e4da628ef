// Package filter translates AIP-160 filter expressions into SQL conditions.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// ErrInvalid wraps every parse or translation failure.
var ErrInvalid = errors.New("invalid filter")

// FieldType selects how a field is declared and how its values bind.
type FieldType int

const (
	// String fields compare against text columns; dates stored as
	// YYYY-MM-DD text are declared as strings too.
	String FieldType = iota
	// Int fields compare against integer columns.
	Int
	// Timestamp fields accept timestamp("RFC3339") and bind unix millis.
	Timestamp
)

// Field exposes one filterable column.
type Field struct {
	Name   string
	Column string
	Type   FieldType
}

// Schema is the set of filterable fields for one list endpoint.
type Schema struct {
	fields map[string]Field
	decls  *filtering.Declarations
}

// NewSchema declares fields for parsing.
func NewSchema(fields ...Field) (*Schema, error) {
	opts := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if f.Name == "" || f.Column == "" {
			return nil, fmt.Errorf("field name and column are required")
		}
		byName[f.Name] = f
		switch f.Type {
		case Int:
			opts = append(opts, filtering.DeclareIdent(f.Name, filtering.TypeInt))
		case Timestamp:
			opts = append(opts, filtering.DeclareIdent(f.Name, filtering.TypeTimestamp))
		default:
			opts = append(opts, filtering.DeclareIdent(f.Name, filtering.TypeString))
		}
	}
	decls, err := filtering.NewDeclarations(opts...)
	if err != nil {
		return nil, fmt.Errorf("create declarations: %w", err)
	}
	return &Schema{fields: byName, decls: decls}, nil
}

// MustSchema is NewSchema for package-level schemas.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// request adapts a raw expression to filtering.Request.
type request string

func (r request) GetFilter() string { return string(r) }

// SQLCondition is a WHERE clause fragment with positional parameters.
type SQLCondition struct {
	Clause string
	Params []any
}

// Empty reports whether the condition adds nothing.
func (c SQLCondition) Empty() bool {
	return strings.TrimSpace(c.Clause) == ""
}

// And joins two conditions, skipping empty ones.
func (c SQLCondition) And(other SQLCondition) SQLCondition {
	switch {
	case c.Empty():
		return other
	case other.Empty():
		return c
	}
	params := make([]any, 0, len(c.Params)+len(other.Params))
	params = append(params, c.Params...)
	params = append(params, other.Params...)
	return SQLCondition{Clause: "(" + c.Clause + " AND " + other.Clause + ")", Params: params}
}

// Parse parses an AIP-160 expression. An empty expression yields an empty
// condition.
func (s *Schema) Parse(filterStr string) (SQLCondition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return SQLCondition{}, nil
	}
	if s == nil {
		return SQLCondition{}, fmt.Errorf("%w: filtering not supported", ErrInvalid)
	}
	parsed, err := filtering.ParseFilter(request(filterStr), s.decls)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cond, err := s.translateExpr(parsed.CheckedExpr.GetExpr())
	if err != nil {
		return SQLCondition{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cond, nil
}

func (s *Schema) translateExpr(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, nil
	}
	call, ok := e.ExprKind.(*expr.Expr_CallExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", e.ExprKind)
	}
	return s.translateCall(call.CallExpr)
}

var comparisonOps = map[string]string{
	filtering.FunctionEquals:        "=",
	filtering.FunctionNotEquals:     "!=",
	filtering.FunctionLessThan:      "<",
	filtering.FunctionLessEquals:    "<=",
	filtering.FunctionGreaterThan:   ">",
	filtering.FunctionGreaterEquals: ">=",
}

func (s *Schema) translateCall(call *expr.Expr_Call) (SQLCondition, error) {
	switch call.Function {
	case filtering.FunctionAnd:
		return s.translateLogical(call.Args, "AND")
	case filtering.FunctionOr:
		return s.translateLogical(call.Args, "OR")
	case filtering.FunctionNot:
		if len(call.Args) != 1 {
			return SQLCondition{}, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := s.translateExpr(call.Args[0])
		if err != nil {
			return SQLCondition{}, err
		}
		return SQLCondition{Clause: "NOT " + inner.Clause, Params: inner.Params}, nil
	}
	if op, ok := comparisonOps[call.Function]; ok {
		return s.translateComparison(call.Args, op)
	}
	return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.Function)
}

func (s *Schema) translateLogical(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("%s requires 2 arguments", op)
	}
	left, err := s.translateExpr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	right, err := s.translateExpr(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func (s *Schema) translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("expected field on the left of %s", op)
	}
	field, ok := s.fields[ident.IdentExpr.GetName()]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", ident.IdentExpr.GetName())
	}
	value, err := extractValue(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	if t, ok := value.(time.Time); ok {
		value = t.UnixMilli()
	}
	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", field.Column, op),
		Params: []any{value},
	}, nil
}

func extractValue(e *expr.Expr) (any, error) {
	switch kind := e.GetExprKind().(type) {
	case *expr.Expr_ConstExpr:
		switch c := kind.ConstExpr.GetConstantKind().(type) {
		case *expr.Constant_StringValue:
			return c.StringValue, nil
		case *expr.Constant_Int64Value:
			return c.Int64Value, nil
		case *expr.Constant_Uint64Value:
			return c.Uint64Value, nil
		case *expr.Constant_DoubleValue:
			return c.DoubleValue, nil
		case *expr.Constant_BoolValue:
			return c.BoolValue, nil
		default:
			return nil, fmt.Errorf("unsupported constant type: %T", c)
		}
	case *expr.Expr_CallExpr:
		if kind.CallExpr.GetFunction() == filtering.FunctionTimestamp && len(kind.CallExpr.GetArgs()) == 1 {
			return extractTimestamp(kind.CallExpr.GetArgs()[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.GetFunction())
	default:
		return nil, fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

func extractTimestamp(e *expr.Expr) (time.Time, error) {
	constant, ok := e.GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return time.Time{}, fmt.Errorf("timestamp argument must be a constant string")
	}
	str, ok := constant.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
	if !ok {
		return time.Time{}, fmt.Errorf("timestamp argument must be a string")
	}
	t, err := time.Parse(time.RFC3339Nano, str.StringValue)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format: %s", str.StringValue)
	}
	return t.UTC(), nil
}
