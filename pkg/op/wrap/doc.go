// Package wrap provides the composition wrappers and the `|` operator.
//
// Go has no operator overloading, so `a | b` is spelled Or(a, b):
//
//	h := wrap.MustComposable(trim)
//	shout, err := wrap.Pipe(h, upper, exclaim) // exclaim(upper(trim(x)))
//
// Wrappers:
//
//   - Composable: any callable; callable results are re-wrapped
//   - Constructor: a class whose constructor composes, but which still
//     combines natively with plain classes
//   - Instances: a class whose instances come back as Composables
//
// Wrappers are immutable and compare structurally: two wrappers of the
// same kind around equal objects are equal. Copies and decoded wrappers are
// always rebuilt through New.
package wrap
