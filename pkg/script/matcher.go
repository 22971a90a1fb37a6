// Package script evaluates user-typed predicates against the element
// tree, so a debug console can target overlays the way devtools
// consoles do: `tag == "div" && depth > 1`.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"boxlens/pkg/element"
)

// Matcher is a compiled boolean expression over one element's fields.
// The expression sees tag, id, depth, width and height bindings; width
// and height are the content-box size.
type Matcher struct {
	vm   *goja.Runtime
	prog *goja.Program
}

// Compile compiles the expression once; Match re-runs it per element.
func Compile(expr string) (*Matcher, error) {
	prog, err := goja.Compile("matcher", expr, true)
	if err != nil {
		return nil, fmt.Errorf("compile matcher: %w", err)
	}
	return &Matcher{vm: goja.New(), prog: prog}, nil
}

// Match evaluates the expression against el. The result follows JS
// truthiness, so `tag` alone matches every element with a non-empty tag.
func (m *Matcher) Match(el *element.Element) (bool, error) {
	m.vm.Set("tag", el.Tag)
	m.vm.Set("id", el.ID)
	m.vm.Set("depth", el.Depth())
	m.vm.Set("width", el.Content.Width)
	m.vm.Set("height", el.Content.Height)

	v, err := m.vm.RunProgram(m.prog)
	if err != nil {
		return false, fmt.Errorf("eval matcher: %w", err)
	}
	return v.ToBoolean(), nil
}

// Select returns the elements under root matching m, in tree order.
// Evaluation stops at the first erroring element.
func (m *Matcher) Select(root *element.Element) ([]*element.Element, error) {
	var out []*element.Element
	var evalErr error
	root.Walk(func(el *element.Element) bool {
		ok, err := m.Match(el)
		if err != nil {
			evalErr = err
			return false
		}
		if ok {
			out = append(out, el)
		}
		return true
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return out, nil
}
