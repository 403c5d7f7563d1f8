// Package builtin is a small library of named functions for text and number
// pipelines. Arguments are coerced with spf13/cast, so "42" and 42 are both
// accepted where a number is expected.
package builtin
