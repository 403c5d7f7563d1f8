// Package chain provides a fluent wrapper around wrap.Or for building
// pipelines without nesting calls.
//
// Key operations:
//
//   - Start/Composable: begin a chain from an operand
//   - Pipe/PipeAll: apply `|` with the next operand(s)
//   - Result/Err: read the accumulated value or first error
//   - Call: invoke the accumulated callable
//   - Finally: collapse the chain into a final value via handlers
package chain
