// Package page describes the scroll page laid over the canvas.
package page

import "github.com/nobonobo/bear-vs-witch/timeline"

// Heading is the title of a section.
type Heading struct {
	Text       string
	FontSize   int
	Color      string
	TextShadow string
}

type Section struct {
	Class   string
	Heading Heading
}

// Sections are laid out top to bottom, one viewport tall each.
var Sections = []Section{
	{
		Class: "part__start",
		Heading: Heading{
			Text:       "three.js",
			FontSize:   128,
			Color:      "black",
			TextShadow: "none",
		},
	},
	{Class: "part__title", Heading: Heading{Text: "Bear vs Witch"}},
	{Class: "part__stats--bear", Heading: Heading{Text: "Bear stats"}},
	{Class: "part__stats--witch", Heading: Heading{Text: "Witch Stats"}},
	{Class: "part__title", Heading: Heading{Text: "Winner?"}},
}

// Declaration is one inline CSS property, named as in the DOM style
// object.
type Declaration struct {
	Property string
	Value    string
}

// ContainerStyle pins the canvas container behind the page.
var ContainerStyle = []Declaration{
	{Property: "position", Value: "fixed"},
	{Property: "top", Value: "0"},
	{Property: "left", Value: "0"},
	{Property: "width", Value: "100%"},
	{Property: "height", Value: "100vh"},
	{Property: "zIndex", Value: "-1"},
}

// CanvasStyle keeps the canvas at the container's CSS size whatever its
// drawing buffer size is.
var CanvasStyle = []Declaration{
	{Property: "display", Value: "block"},
	{Property: "width", Value: "100%"},
	{Property: "height", Value: "100%"},
}

// ScrollHeight is the page height for the given viewport height.
func ScrollHeight(viewportHeight float64) float64 {
	return float64(len(Sections)) * max(viewportHeight, 0)
}

// Layout is the page geometry for one viewport height.
type Layout struct {
	ViewportHeight float64
}

func (l Layout) Height() float64 {
	return ScrollHeight(l.ViewportHeight)
}

// MaxScroll is the largest scroll offset of the document.
func (l Layout) MaxScroll() float64 {
	return max(l.Height()-l.ViewportHeight, 0)
}

// Progress maps a scroll offset to timeline progress. The animation
// starts when the page top reaches the viewport top and ends when the
// page bottom reaches the viewport bottom.
func (l Layout) Progress(scrollTop float64) float64 {
	return timeline.ScrollProgress(scrollTop, 0, l.Height(), l.ViewportHeight)
}

// ScrollTop is the scroll offset at which the given progress is reached.
func (l Layout) ScrollTop(progress float64) float64 {
	return min(max(progress, 0), 1) * l.MaxScroll()
}
