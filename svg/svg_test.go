package svg

import (
	"strings"
	"testing"
)

func TestUpsertReusesElement(t *testing.T) {
	d := NewDocument(100, 100)
	g := d.Root.Add("g")

	first, created := d.Upsert("marker", g, "line")
	if !created {
		t.Fatal("first upsert should create")
	}
	for i := 0; i < 50; i++ {
		e, created := d.Upsert("marker", g, "line")
		if created || e != first {
			t.Fatal("upsert should return the existing element")
		}
	}

	if n := d.Count("line"); n != 1 {
		t.Errorf("expected one line, found %d", n)
	}
}

func TestUpsertAfterRemove(t *testing.T) {
	d := NewDocument(100, 100)
	g := d.Root.Add("g")

	e, _ := d.Upsert("marker", g, "line")
	d.Clear(g)

	if _, ok := d.Lookup("marker"); ok {
		t.Error("removed element should not be found")
	}

	e2, created := d.Upsert("marker", g, "line")
	if !created || e2 == e {
		t.Error("upsert should create a new element after removal")
	}
}

func TestSelectAll(t *testing.T) {
	d := NewDocument(100, 100)
	g := d.Root.Add("g")
	g.Add("line").Set("class", "datapoint-line")
	g.Add("line").Set("class", "datapoint-line highlighted")
	g.Add("text").Set("class", "time-label")

	if n := len(d.SelectAll("datapoint-line")); n != 2 {
		t.Errorf("expected 2 elements, got %d", n)
	}
	if n := len(d.SelectAll("highlighted")); n != 1 {
		t.Errorf("expected 1 element, got %d", n)
	}
}

func TestDispatch(t *testing.T) {
	d := NewDocument(100, 100)
	target := d.Root.Add("line")

	var got []EventType
	target.On(PointerEnter, func(ev Event) { got = append(got, ev.Type) })
	target.On(PointerLeave, func(ev Event) { got = append(got, ev.Type) })

	d.Dispatch(Event{Type: PointerEnter, Target: target})
	d.Dispatch(Event{Type: PointerLeave, Target: target})

	if len(got) != 2 || got[0] != PointerEnter || got[1] != PointerLeave {
		t.Errorf("unexpected events %v", got)
	}

	d.Remove(target)
	d.Dispatch(Event{Type: PointerEnter, Target: target})
	if len(got) != 2 {
		t.Error("detached elements should not receive events")
	}
}

func TestRender(t *testing.T) {
	d := NewDocument(10, 20)
	d.Root.Add("text").Set("x", "1").Set("class", "label").SetText("a < b")
	d.Root.Add("line").SetFloat("x1", 0.5).Set("stroke", "")

	got := d.String()
	want := `<svg height="20" width="10" xmlns="http://www.w3.org/2000/svg">` +
		`<text class="label" x="1">a &lt; b</text><line x1="0.5"></line></svg>`

	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestAppendMovesElement(t *testing.T) {
	d := NewDocument(10, 10)
	a := d.Root.Add("g")
	b := d.Root.Add("g")
	c := a.Add("circle")

	b.Append(c)

	if len(a.Children) != 0 || len(b.Children) != 1 || c.Parent != b {
		t.Error("element should have moved")
	}
	if !strings.Contains(d.String(), "<g></g><g><circle></circle></g>") {
		t.Errorf("unexpected document %s", d.String())
	}
}
