// Package engine sequences callables into a single callable.
//
// Compose(f, g, h) runs h first and f last, piping each result into the
// next stage. Stages returning an op.Pending suspend the rest of the
// pipeline onto a core.Future; see core.WithInlineAwait to await on the
// caller's goroutine instead.
package engine
