// Package gs1validate implements the independent validators a decoded
// GS1 element can be checked against: the mod-10 check digit, the date
// formats, character-set/length rules, and decimal-position decoding
// for the weight/measure AI family. Each validator is a pure function
// returning a Result; none of them know about the AI dictionary or the
// parser that calls them.
package gs1validate

// Result is the outcome of a single validation. It never panics on bad
// input — a malformed value is reported as an error, not an exception.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Meta     map[string]any
}

func ok() Result {
	return Result{Valid: true, Meta: map[string]any{}}
}

func fail(msg string) Result {
	return Result{Valid: false, Errors: []string{msg}, Meta: map[string]any{}}
}

func (r *Result) addError(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}
