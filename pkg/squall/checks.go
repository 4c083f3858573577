package squall

import "squall/pkg/squall/core"

// FailIf fails the enclosing test when cond is true, recording condText
// as the source text of the condition ("" when unavailable) together
// with the call site. It must run inside a test body launched by a
// Manager.
func FailIf(cond bool, condText string) {
	if cond {
		panic(&core.ConditionFailure{
			Condition: condText,
			Expected:  false,
			Location:  core.Here(1),
		})
	}
}

// SuccessRequires fails the enclosing test when cond is false. The
// counterpart of FailIf for conditions that must hold.
func SuccessRequires(cond bool, condText string) {
	if !cond {
		panic(&core.ConditionFailure{
			Condition: condText,
			Expected:  true,
			Location:  core.Here(1),
		})
	}
}
