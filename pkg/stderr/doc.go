/*
Package stderr renders semantic messages, call traces, context banners
and tabular layouts to a terminal sink.

The central type is Stderr, a stateful logger. The zero-argument
constructor resolves its verbosity from the environment (QUIET_MODE,
DEBUG_MODE, DEV_MODE, TRACE_MODE, SILLY_MODE) and writes to the
process's standard error stream:

	log := stderr.New()
	log.Info("starting up")
	log.Okay("ready")

Verbosity can instead be supplied programmatically, and every setting
has a chainable override:

	quiet := stderr.WithConfig(config.Config{Quiet: true})
	quiet.Warn("not printed")
	quiet.Error("still printed")

Quiet suppresses every level except error and okay. The debug, trace
and silly levels are additive gates: each is emitted only when its flag
is enabled.

Rendering is synchronous. Each call produces at most one write to the
sink and surfaces a failed write as an error result; the library never
terminates its host program.

# Concurrency

Stderr performs no internal locking. The trace stack and context state
are plain mutable fields, so a logger instance — including the shared
instance returned by Global — must only be used from one goroutine at a
time. Embedding programs that log from several goroutines must
serialize access themselves.
*/
package stderr
