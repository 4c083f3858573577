package launch

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"squall/internal/report"
	"squall/pkg/squall/core"
)

// Result carries one classified execution.
type Result struct {
	// Passed is true only when the body returned true normally.
	Passed bool

	// Panic is the recovered abnormal termination, nil when the body
	// returned normally.
	Panic *PanicError
}

// Test runs one test body and writes its report to out: a header block,
// then one diagnostic describing the outcome. Every abnormal termination
// of the body is recovered and classified here and nowhere else; Test
// itself never panics.
func Test(t core.Test, out io.Writer) Result {
	fmt.Fprint(out, report.Header(t.DisplayName()))

	res := run(t.Fn)
	fmt.Fprint(out, diagnostic(res))
	return res
}

// run invokes fn on the calling goroutine so that process wide state
// mutation and panic recovery behave exactly as in direct invocation.
func run(fn core.TestFunc) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Panic: NewPanicError(r, debug.Stack())}
		}
	}()

	return Result{Passed: fn()}
}

// diagnostic converts a classified result into report sink text.
// Classification priority: condition failure signal, then domain error
// categories, then unknown.
func diagnostic(res Result) string {
	if res.Panic == nil {
		return report.Outcome(res.Passed)
	}

	switch v := res.Panic.any.(type) {
	case *core.ConditionFailure:
		return report.ConditionFailure(v)
	case error:
		return errorDiagnostic(v)
	default:
		return report.UnknownFailure()
	}
}

func errorDiagnostic(err error) string {
	var invalid *core.InvalidArgumentError
	if errors.As(err, &invalid) {
		return report.CategorizedFailure("invalid argument", err.Error())
	}

	var rt runtime.Error
	if errors.As(err, &rt) {
		return report.CategorizedFailure("runtime error", err.Error())
	}

	return report.CategorizedFailure("error", err.Error())
}
