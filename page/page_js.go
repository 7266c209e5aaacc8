//go:build js

package page

import (
	"fmt"
	"net/url"
	"syscall/js"

	"github.com/nobonobo/bear-vs-witch/timeline"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	params   url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
}

// GetParam returns a query parameter of the page URL.
func GetParam(key string) string {
	return params.Get(key)
}

// Document is the mounted page: a fixed canvas container behind the
// scrolling sections.
type Document struct {
	Container js.Value
	Canvas    js.Value
	Page      js.Value

	listeners []listener
}

type listener struct {
	event string
	fn    js.Func
}

// Mount creates the page markup inside the body.
func Mount() *Document {
	body := document.Get("body")

	container := document.Call("createElement", "div")
	container.Set("className", "canvas-container")
	applyStyle(container, ContainerStyle)

	canvas := document.Call("createElement", "canvas")
	applyStyle(canvas, CanvasStyle)
	container.Call("appendChild", canvas)
	body.Call("appendChild", container)

	root := document.Call("createElement", "div")
	root.Set("className", "page")
	for _, section := range Sections {
		el := document.Call("createElement", "section")
		el.Set("className", section.Class)
		el.Get("style").Set("height", "100vh")

		h1 := document.Call("createElement", "h1")
		h1.Set("textContent", section.Heading.Text)
		hs := h1.Get("style")
		if section.Heading.FontSize > 0 {
			hs.Set("fontSize", fmt.Sprintf("%dpx", section.Heading.FontSize))
		}
		if section.Heading.Color != "" {
			hs.Set("color", section.Heading.Color)
		}
		if section.Heading.TextShadow != "" {
			hs.Set("textShadow", section.Heading.TextShadow)
		}
		el.Call("appendChild", h1)
		root.Call("appendChild", el)
	}
	body.Call("appendChild", root)

	return &Document{
		Container: container,
		Canvas:    canvas,
		Page:      root,
	}
}

func applyStyle(el js.Value, style []Declaration) {
	target := el.Get("style")
	for _, d := range style {
		target.Set(d.Property, d.Value)
	}
}

// Size returns the canvas container size and the device pixel ratio.
func (d *Document) Size() (width, height, pixelRatio float64) {
	width = d.Container.Get("clientWidth").Float()
	height = d.Container.Get("clientHeight").Float()
	if width == 0 || height == 0 {
		width = window.Get("innerWidth").Float()
		height = window.Get("innerHeight").Float()
	}
	return width, height, window.Get("devicePixelRatio").Float()
}

// Progress is the scroll progress of the page within the viewport.
func (d *Document) Progress() float64 {
	rect := d.Page.Call("getBoundingClientRect")
	scrollY := window.Get("scrollY").Float()
	return timeline.ScrollProgress(
		scrollY,
		rect.Get("top").Float()+scrollY,
		rect.Get("height").Float(),
		window.Get("innerHeight").Float(),
	)
}

// OnScroll calls fn with the new progress on every scroll event.
func (d *Document) OnScroll(fn func(progress float64)) {
	d.listen("scroll", func() {
		fn(d.Progress())
	})
}

// OnResize calls fn with the container size on every resize event.
func (d *Document) OnResize(fn func(width, height, pixelRatio float64)) {
	d.listen("resize", func() {
		fn(d.Size())
	})
}

func (d *Document) listen(event string, fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	d.listeners = append(d.listeners, listener{event: event, fn: cb})
	window.Call("addEventListener", event, cb, map[string]any{"passive": true})
}

// Release removes the event listeners.
func (d *Document) Release() {
	for _, l := range d.listeners {
		window.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	d.listeners = nil
}
