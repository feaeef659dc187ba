package cli

import "testing"

func TestNewCommandAcceptsOptionalName(t *testing.T) {
	if err := newCmd.Args(newCmd, nil); err != nil {
		t.Errorf("no argument should be accepted: %v", err)
	}
	if err := newCmd.Args(newCmd, []string{"my-app"}); err != nil {
		t.Errorf("a single project name should be accepted: %v", err)
	}
	if err := newCmd.Args(newCmd, []string{"a", "b"}); err == nil {
		t.Error("two arguments should be rejected")
	}
}
