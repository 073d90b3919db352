package bytesref

import "testing"

func TestCompareTotalOrder(t *testing.T) {
	cases := []struct {
		a, b Ref
		want int
	}{
		{Nil, Nil, 0},
		{Nil, New([]byte("a")), -1},
		{New([]byte("a")), Nil, 1},
		{New([]byte("abc")), New([]byte("abd")), -1},
		{New([]byte("abc")), New([]byte("ab")), 1},
		{New([]byte{0xff}), New([]byte{0x7f}), 1}, // unsigned comparison
		{New([]byte("x")), New([]byte("x")), 0},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%q,%q) = %d, want %d", c.a.Bytes(), c.b.Bytes(), got, c.want)
		}
	}
}

func TestStartsWith(t *testing.T) {
	r := New([]byte("hello world"))
	if !StartsWith(r, r) {
		t.Error("a ref must start with itself")
	}
	if !StartsWith(r, New([]byte("hello"))) {
		t.Error("expected prefix match")
	}
	if StartsWith(New([]byte("hell")), New([]byte("hello"))) {
		t.Error("shorter ref cannot start with a longer prefix")
	}
	if !StartsWith(r, Nil) {
		t.Error("every ref starts with the empty prefix")
	}
}

func TestHashStability(t *testing.T) {
	a := New([]byte("the quick brown fox"))
	b := New([]byte("the quick brown fox"))
	if Hash(a) != Hash(b) {
		t.Error("equal refs must hash equal")
	}
	if !Equal(a, b) {
		t.Error("equal refs must compare equal")
	}
	c := New([]byte("the quick brown fax"))
	if Hash(a) == Hash(c) {
		t.Error("distinct content should not usually collide (flaky if it does)")
	}
}

func TestNilVsEmpty(t *testing.T) {
	empty := New([]byte{})
	if Equal(Nil, empty) {
		t.Error("Nil and an explicit empty ref are not defined as equal")
	}
	if !empty.Empty() || !Nil.Empty() {
		t.Error("both Nil and empty ref report Empty() == true")
	}
	if !Nil.IsNil() || empty.IsNil() {
		t.Error("IsNil must distinguish Nil from an explicit empty slice")
	}
}
