// Package op is the small object model the composition wrappers operate
// over: callables, classes and their instances, descriptors, proxies and
// the native `|` between classes.
//
// Key pieces:
//
//   - Callable/Function/Method/BoundMethod: things that can be invoked
//   - Class/Object/CallableObject: constructors and what they construct
//   - CapabilityOf/IsCallable/IsClass: operand classification
//   - Combine/Union: native combination of classes
//   - Outcome: result of a pipeline operator hook, including NotApplicable
//   - Equal/Repr/DeepCopy: the hooks wrappers override
package op
