// Package codec serializes wrappers and compositions to JSON.
//
// Functions and classes cannot be encoded themselves, so they are written
// by the name they were registered under in a Registry. Decoding rebuilds
// every wrapper through wrap.New and every composition through
// engine.Compose, never by copying wrapper state.
package codec
