// Package svg is a minimal SVG document tree with keyed lookup and event
// dispatch.
package svg

import (
	"sort"
	"strconv"
	"strings"
)

type EventType string

const (
	PointerEnter EventType = "pointerenter"
	PointerLeave EventType = "pointerleave"
)

type Event struct {
	Type   EventType
	Target *Element
}

type Handler func(ev Event)

// Element is one node of an SVG document
type Element struct {
	Tag      string
	Text     string
	Children []*Element
	Parent   *Element

	// Datum is the data point the element was drawn from
	Datum interface{}

	attrs    map[string]string
	handlers map[EventType][]Handler
	key      string
}

func NewElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		attrs: make(map[string]string),
	}
}

// Set sets an attribute, an empty value removes it
func (e *Element) Set(name, value string) *Element {
	if value == "" {
		delete(e.attrs, name)
		return e
	}
	e.attrs[name] = value
	return e
}

func (e *Element) SetFloat(name string, value float64) *Element {
	return e.Set(name, strconv.FormatFloat(value, 'f', -1, 64))
}

func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

func (e *Element) Get(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

// Float parses an attribute, missing or malformed attributes give 0
func (e *Element) Float(name string) float64 {
	v, err := strconv.ParseFloat(e.attrs[name], 64)
	if err != nil {
		return 0
	}
	return v
}

// Attrs returns the attribute names in sorted order
func (e *Element) Attrs() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Append adds child as the last child of e and returns it
func (e *Element) Append(child *Element) *Element {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = e
	e.Children = append(e.Children, child)
	return child
}

// Add creates a new child element
func (e *Element) Add(tag string) *Element {
	return e.Append(NewElement(tag))
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (e *Element) HasClass(class string) bool {
	for _, c := range strings.Fields(e.attrs["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// On registers a handler for events of type t targeted at e
func (e *Element) On(t EventType, h Handler) *Element {
	if e.handlers == nil {
		e.handlers = make(map[EventType][]Handler)
	}
	e.handlers[t] = append(e.handlers[t], h)
	return e
}

// Walk visits e and its descendants depth first until fn returns false
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// attached reports whether root is an ancestor of e or e itself
func (e *Element) attached(root *Element) bool {
	for x := e; x != nil; x = x.Parent {
		if x == root {
			return true
		}
	}
	return false
}
