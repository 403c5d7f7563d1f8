// Package core contains plumbing shared by the composition engine: context
// options (logger, await behaviour) and channel-backed futures for pipelines
// whose stages return pending results.
package core
