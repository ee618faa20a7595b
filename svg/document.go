package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
)

// Document is an SVG tree whose elements can be looked up by key
type Document struct {
	Root *Element

	keyed map[string]*Element
}

func NewDocument(width, height float64) *Document {
	root := NewElement("svg").
		Set("xmlns", "http://www.w3.org/2000/svg").
		SetFloat("width", width).
		SetFloat("height", height)

	return &Document{
		Root:  root,
		keyed: make(map[string]*Element),
	}
}

// Upsert returns the element registered under key or creates it as a
// child of parent. created is true when a new element was added.
func (d *Document) Upsert(key string, parent *Element, tag string) (e *Element, created bool) {
	if e, ok := d.keyed[key]; ok && e.attached(d.Root) {
		return e, false
	}
	e = parent.Add(tag)
	e.key = key
	d.keyed[key] = e
	return e, true
}

// Lookup returns the attached element registered under key
func (d *Document) Lookup(key string) (*Element, bool) {
	e, ok := d.keyed[key]
	if !ok || !e.attached(d.Root) {
		return nil, false
	}
	return e, true
}

// Remove detaches e from the document and forgets the keys in its subtree
func (d *Document) Remove(e *Element) {
	if e.Parent != nil {
		e.Parent.removeChild(e)
	}
	e.Walk(func(x *Element) bool {
		if x.key != "" && d.keyed[x.key] == x {
			delete(d.keyed, x.key)
		}
		return true
	})
}

// Clear removes all children of e
func (d *Document) Clear(e *Element) {
	for len(e.Children) > 0 {
		d.Remove(e.Children[0])
	}
}

// SelectAll returns all elements carrying class in document order
func (d *Document) SelectAll(class string) []*Element {
	var out []*Element
	d.Root.Walk(func(e *Element) bool {
		if e.HasClass(class) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Count returns the number of elements with the given tag
func (d *Document) Count(tag string) int {
	n := 0
	d.Root.Walk(func(e *Element) bool {
		if e.Tag == tag {
			n++
		}
		return true
	})
	return n
}

// Dispatch runs the handlers registered on the target for ev.Type
func (d *Document) Dispatch(ev Event) {
	if ev.Target == nil || !ev.Target.attached(d.Root) {
		return
	}
	for _, h := range ev.Target.handlers[ev.Type] {
		h(ev)
	}
}

func encode(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, name := range e.Attrs() {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: e.attrs[name]})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := encode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Render writes the document as XML
func (d *Document) Render(w io.Writer) error {
	enc := xml.NewEncoder(w)
	if err := encode(enc, d.Root); err != nil {
		return err
	}
	return enc.Flush()
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "<!-- " + strconv.Quote(err.Error()) + " -->"
	}
	return buf.String()
}
