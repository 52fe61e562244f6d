package guard

import "go.uber.org/zap"

// Reporter delivers a fatal diagnostic. A Reporter must not return
// normally: the default terminates the process, and test replacements
// unwind the calling goroutine with a panic.
type Reporter func(msg string)

// fatalLog backs the default Reporter. Production zap config: JSON to
// stderr, Fatal level triggers os.Exit(1) after the write is flushed.
var fatalLog = zap.Must(zap.NewProduction())

// reporter is the currently installed Reporter. Swapped only during
// setup or in tests; guards themselves never mutate it.
var reporter Reporter = func(msg string) {
	fatalLog.Fatal(msg)
}

// SetReporter installs r as the fatal Reporter shared by all guards and
// by safecast, returning the previously installed one so callers can
// restore it. Install before concurrent guard use begins.
func SetReporter(r Reporter) Reporter {
	prev := reporter
	reporter = r

	return prev
}

// Die reports msg through the current Reporter and never returns
// normally. Should an installed Reporter violate its contract and
// return, Die panics with the same diagnostic so the failing guard
// still cannot hand a bad value back to its caller.
func Die(msg string) {
	reporter(msg)
	panic(msg)
}
