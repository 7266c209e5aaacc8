//go:build js

package three

import (
	"errors"
	"syscall/js"
)

var (
	window = js.Global().Get("window")
	THREE  = js.Global().Get("THREE")
)

type goObject struct {
	jsValue js.Value
}

type Promise[T any] interface {
	Then(cb func(value T)) Promise[T]
	Catch(cb func(err error)) Promise[T]
}

var _ Promise[struct{}] = goPromise[struct{}]{}

type goPromise[T any] struct {
	goObject
	convert func(value js.Value) T
}

func (g goPromise[T]) Then(cb func(value T)) Promise[T] {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer jsFunc.Release()
		cb(g.convert(args[0]))
		return nil
	})
	g.jsValue.Call("then", jsFunc)
	return g
}

func (g goPromise[T]) Catch(cb func(err error)) Promise[T] {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer jsFunc.Release()
		cb(js.Error{
			Value: args[0],
		})
		return js.Undefined()
	})
	g.jsValue.Call("catch", jsFunc)
	return g
}

func wrapPromise(value js.Value) Promise[js.Value] {
	return goPromise[js.Value]{
		goObject: goObject{jsValue: value},
		convert: func(value js.Value) js.Value {
			return value
		},
	}
}

// Import loads an ES module.
func Import(url string) Promise[js.Value] {
	return wrapPromise(js.Global().Call("import", url))
}

var errRejected = errors.New("promise rejected")

// await blocks the calling goroutine until the promise settles. It must
// not be called from a JS callback.
func await[T any](promise Promise[T]) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	promise.Then(func(value T) {
		done <- result{value: value}
	}).Catch(func(err error) {
		if err == nil {
			err = errRejected
		}
		done <- result{err: err}
	})
	r := <-done
	return r.value, r.err
}
