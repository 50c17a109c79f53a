package auth

import "context"

type contextKey string

const cashierKey contextKey = "cashier"

// WithCashier returns a context stamped with the name of the user
// performing the current operation.
func WithCashier(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, cashierKey, name)
}

// CashierFromContext returns the cashier name set by WithCashier,
// or "" when no user is attached.
func CashierFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(cashierKey).(string); ok {
		return val
	}
	return ""
}
