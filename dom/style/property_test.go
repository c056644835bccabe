package style

import "testing"

func TestPropertyMapInsertionOrder(t *testing.T) {
	var pm PropertyMap
	pm.Set("color", "red")
	pm.Set("margin", "0")
	pm.Set("padding", "4px")
	want := "color:red;margin:0;padding:4px"
	if s := pm.InlineString(); s != want {
		t.Errorf("expected inline string %q, is %q", want, s)
	}
}

func TestPropertyMapLastWriteWinsFirstPositionKept(t *testing.T) {
	var pm PropertyMap
	pm.Set("color", "red")
	pm.Set("margin", "0")
	pm.Set("color", "blue")
	want := "color:blue;margin:0"
	if s := pm.InlineString(); s != want {
		t.Errorf("expected inline string %q, is %q", want, s)
	}
	if pm.Len() != 2 {
		t.Errorf("expected 2 properties, are %d", pm.Len())
	}
}

func TestPropertyMapEmpty(t *testing.T) {
	var pm PropertyMap
	if s := pm.InlineString(); s != "" {
		t.Errorf("expected empty map to render as empty string, is %q", s)
	}
}

func TestPropertyMapRemove(t *testing.T) {
	var pm PropertyMap
	pm.Set("a", "1")
	pm.Set("b", "2")
	pm.Remove("a")
	if _, ok := pm.Get("a"); ok {
		t.Error("expected key 'a' to be gone, isn't")
	}
	if s := pm.InlineString(); s != "b:2" {
		t.Errorf("expected inline string \"b:2\", is %q", s)
	}
}

func TestClassListIdempotentAdd(t *testing.T) {
	var cl ClassList
	cl.Add("card")
	cl.Add("shadow")
	cl.Add("card")
	if s := cl.String(); s != "card shadow" {
		t.Errorf("expected class string \"card shadow\", is %q", s)
	}
}

func TestClassListEmpty(t *testing.T) {
	var cl ClassList
	if s := cl.String(); s != "" {
		t.Errorf("expected empty class list to render as empty string, is %q", s)
	}
}
