package shell

import (
	"context"
	"fmt"
	"strings"
)

// Call records a single invocation made through a FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// FakeRunner is a scriptable Runner for tests. Results are keyed by command
// name; unknown commands succeed with empty output.
type FakeRunner struct {
	Calls []Call

	// Results maps command name to a scripted output. Optional.
	Results map[string]*Output
	// Errors maps command name to a scripted error. Optional.
	Errors map[string]error
	// Missing lists command names LookPath should report as absent.
	Missing []string
}

// Run records the call and returns any scripted result.
func (f *FakeRunner) Run(_ context.Context, dir, name string, args ...string) (*Output, error) {
	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: args})
	if err, ok := f.Errors[name]; ok {
		return nil, err
	}
	if out, ok := f.Results[name]; ok {
		return out, nil
	}
	return &Output{}, nil
}

// LookPath reports a fake path unless the name is scripted as missing.
func (f *FakeRunner) LookPath(name string) (string, error) {
	for _, m := range f.Missing {
		if m == name {
			return "", fmt.Errorf("%s not found", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// CommandLines renders recorded calls as "name arg1 arg2" strings, useful for
// asserting on the exact sequence of delegated commands.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
	}
	return lines
}
