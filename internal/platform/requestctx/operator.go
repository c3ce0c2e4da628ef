// Package requestctx carries the authenticated operator through request contexts.
package requestctx

import "context"

// Operator identifies the back-office user acting on a request.
type Operator struct {
	Name string
	Role string
}

type operatorContextKey struct{}

type localeContextKey struct{}

// WithOperator stores the operator in context.
func WithOperator(ctx context.Context, operator Operator) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, operatorContextKey{}, operator)
}

// OperatorFromContext returns the operator stored in context.
func OperatorFromContext(ctx context.Context) (Operator, bool) {
	if ctx == nil {
		return Operator{}, false
	}
	op, ok := ctx.Value(operatorContextKey{}).(Operator)
	return op, ok
}

// OperatorName returns the operator name, or fallback when none is set.
func OperatorName(ctx context.Context, fallback string) string {
	op, ok := OperatorFromContext(ctx)
	if !ok || op.Name == "" {
		return fallback
	}
	return op.Name
}

// WithLocale stores the resolved request locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the request locale or "".
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(localeContextKey{}).(string)
	return value
}
