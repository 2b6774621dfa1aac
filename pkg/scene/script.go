package scene

import (
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"
)

// Engine evaluates a scene's child-generation script with a goja runtime.
//
// Scripts see three builder functions plus a console:
//
//	box(width, height [, label])  - append a fixed-size child
//	text(s [, label])             - append a text child
//	breakRow()                    - mark the last child with a forced row break
//	console.log/warn/error(...)   - diagnostics
//
// Each Engine owns a fresh runtime; scripts cannot observe state from other
// scenes or earlier runs.
type Engine struct {
	vm    *goja.Runtime
	specs []ChildSpec
}

// NewEngine creates a script engine with the builder API registered.
func NewEngine() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}

	vm.Set("box", e.box)
	vm.Set("text", e.text)
	vm.Set("breakRow", e.breakRow)
	registerConsole(vm)

	return e
}

// GenerateChildren runs source and returns the children it built, in call
// order.
func (e *Engine) GenerateChildren(source string) ([]ChildSpec, error) {
	e.specs = nil
	if _, err := e.vm.RunString(source); err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}
	return e.specs, nil
}

func (e *Engine) box(call goja.FunctionCall) goja.Value {
	spec := ChildSpec{
		Width:  call.Argument(0).ToFloat(),
		Height: call.Argument(1).ToFloat(),
	}
	if len(call.Arguments) > 2 {
		spec.Label = call.Argument(2).String()
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		panic(e.vm.ToValue(fmt.Sprintf("box: size must be positive, got %gx%g", spec.Width, spec.Height)))
	}
	e.specs = append(e.specs, spec)
	return goja.Undefined()
}

func (e *Engine) text(call goja.FunctionCall) goja.Value {
	spec := ChildSpec{Text: call.Argument(0).String()}
	if len(call.Arguments) > 1 {
		spec.Label = call.Argument(1).String()
	}
	if spec.Text == "" {
		panic(e.vm.ToValue("text: string must be non-empty"))
	}
	e.specs = append(e.specs, spec)
	return goja.Undefined()
}

func (e *Engine) breakRow(goja.FunctionCall) goja.Value {
	if len(e.specs) == 0 {
		panic(e.vm.ToValue("breakRow: no child to break after"))
	}
	e.specs[len(e.specs)-1].BreakAfter = true
	return goja.Undefined()
}

// registerConsole wires a minimal console API: log to stdout, warn and error
// to stderr.
func registerConsole(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		fmt.Println(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(os.Stderr, "WARN:", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(os.Stderr, "ERROR:", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
