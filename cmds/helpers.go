package cmds

import (
	"fmt"
	"slices"
	"strings"
)

// Var defines `name <value>` setting the returned variable and `name.` resetting it.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines `name` turning the returned flag on and `!name` turning it off.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))
	return &value
}

// Collect defines `name <value>` appending to the returned list. It may be repeated.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")))
	return &value
}

// Choice is Var restricted to the given values.
func Choice(name string, choices []string, desc ...string) *string {
	var value string
	Define(name, Func(func(v string) error {
		if !slices.Contains(choices, v) {
			return fmt.Errorf("expecting one of %s, got %q", strings.Join(choices, ", "), v)
		}
		value = v
		return nil
	}).Desc(strings.Join(append(desc, "("+strings.Join(choices, "|")+")"), " ")))
	return &value
}
