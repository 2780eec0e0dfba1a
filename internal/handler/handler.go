// Package handler implements the request modes. Handlers are synchronous,
// call providers one at a time and hold no state between requests.
package handler

import "fmt"

// Failure is a mode-level outcome reported to the caller as {"error": Reason}.
type Failure struct {
	Reason string
}

func (f *Failure) Error() string { return f.Reason }

func failf(format string, args ...any) *Failure {
	return &Failure{Reason: fmt.Sprintf(format, args...)}
}
