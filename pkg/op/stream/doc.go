// Package stream runs one pipeline over a feed of inputs on a fixed number
// of worker lines. Wrappers and compositions are immutable, so a single
// pipeline value is shared by every line.
//
//	items := stream.Collect(stream.Run(ctx, pipeline, stream.FromValues(ctx, inputs...), 4))
package stream
