package errors

import "fmt"

// SoftWarning is a detectable, non-fatal finding. Generation proceeds and the
// warning is recorded in the run report.
type SoftWarning struct {
	Pass    string `json:"pass"`
	Element string `json:"element,omitempty"`
	Message string `json:"message"`
}

func (w SoftWarning) String() string {
	if w.Element == "" {
		return fmt.Sprintf("[%s] %s", w.Pass, w.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", w.Pass, w.Element, w.Message)
}

// Warnings accumulates soft warnings for one refinement run.
// It is not safe for concurrent use; a run is single-threaded.
type Warnings struct {
	items []SoftWarning
}

// Add records a warning
func (w *Warnings) Add(pass, element, format string, args ...interface{}) {
	w.items = append(w.items, SoftWarning{
		Pass:    pass,
		Element: element,
		Message: fmt.Sprintf(format, args...),
	})
}

// Len returns the number of recorded warnings
func (w *Warnings) Len() int {
	return len(w.items)
}

// All returns a copy of the recorded warnings in insertion order
func (w *Warnings) All() []SoftWarning {
	out := make([]SoftWarning, len(w.items))
	copy(out, w.items)
	return out
}
