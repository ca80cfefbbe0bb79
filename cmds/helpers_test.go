package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	grammar := Var[string]("TestVar.grammar", "entry rule")
	jobs := Var[int]("TestVar.jobs")
	GlobalExecutor.MustExecute([]string{
		"TestVar.grammar", "double",
		"TestVar.jobs", "4",
	})
	if *grammar != "double" {
		t.Fatalf("got %q", *grammar)
	}
	if *jobs != 4 {
		t.Fatalf("got %d", *jobs)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar.jobs.",
	})
	if *jobs != 0 {
		t.Fatalf("got %d", *jobs)
	}
}

func TestSwitch(t *testing.T) {
	tokens := Switch("TestSwitch", "print tokens")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*tokens {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *tokens {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	files := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a.txt",
		"TestCollect", "-",
	})
	if str := fmt.Sprintf("%v", *files); str != "[a.txt -]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Name string
	v := Var[Name]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "statements",
	})
	if *v != "statements" {
		t.Fatalf("got %q", *v)
	}
}

func TestChoice(t *testing.T) {
	policy := Choice("TestChoice", []string{"deepest", "last"}, "tie break")
	GlobalExecutor.MustExecute([]string{
		"TestChoice", "last",
	})
	if *policy != "last" {
		t.Fatalf("got %q", *policy)
	}
	err := GlobalExecutor.Execute([]string{
		"TestChoice", "first",
	})
	if err == nil || !strings.Contains(err.Error(), `TestChoice: expecting one of deepest, last, got "first"`) {
		t.Fatalf("got %v", err)
	}
	if *policy != "last" {
		t.Fatalf("got %q", *policy)
	}
}
