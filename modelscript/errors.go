package modelscript

// ErrMissingFunction reports that a loaded script does not define a
// required top-level function.
type ErrMissingFunction struct {
	Name string
}

func (e *ErrMissingFunction) Error() string {
	return "modelscript: script does not define a \"" + e.Name + "\" function"
}

// ErrScriptFailed wraps an error raised while compiling or running a
// script. Stage identifies which call failed ("compile", "behaviourOf",
// "refinedBy").
type ErrScriptFailed struct {
	Stage string
	Err   error
}

func (e *ErrScriptFailed) Error() string {
	return "modelscript: " + e.Stage + ": " + e.Err.Error()
}

func (e *ErrScriptFailed) Unwrap() error { return e.Err }
