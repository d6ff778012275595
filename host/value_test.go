package host

import (
	"testing"
)

func TestKind_String(t *testing.T) {
	if KindDict.String() != "dict" || Kind(99).String() != "unknown" {
		t.Error("Kind names mismatch")
	}
	if !KindList.IsContainer() || KindString.IsContainer() {
		t.Error("IsContainer mismatch")
	}
}

func TestStringValue_Copies(t *testing.T) {
	v := StringValue("abc")
	if string(v.Str) != "abc" || v.Kind != KindString {
		t.Fatalf("StringValue = %+v", v)
	}
	if NullString().Str != nil {
		t.Fatal("NullString must have no buffer")
	}
	if StringValue("").Str == nil {
		t.Fatal("empty string must still have a buffer")
	}
}

func TestListValue_TakesReference(t *testing.T) {
	heap := NewHeap()
	l := heap.NewList()
	if l.Refcount() != 0 {
		t.Fatalf("new list refcount = %d, want 0", l.Refcount())
	}

	v := ListValue(l)
	if l.Refcount() != 1 {
		t.Fatalf("refcount = %d, want 1", l.Refcount())
	}

	c := Copy(&v)
	if l.Refcount() != 2 || c.List != l {
		t.Fatalf("Copy should share and ref, refcount = %d", l.Refcount())
	}

	Clear(&c)
	if l.Refcount() != 1 || l.Freed() {
		t.Fatalf("refcount = %d after one Clear", l.Refcount())
	}
	if c.Kind != KindUnknown {
		t.Fatal("Clear should reset the value")
	}

	Clear(&v)
	if !l.Freed() {
		t.Fatal("list should be freed when the last reference goes")
	}
	if heap.Len() != 0 {
		t.Fatalf("heap.Len() = %d, want 0", heap.Len())
	}
}

func TestCopy_DuplicatesString(t *testing.T) {
	v := StringValue("x")
	c := Copy(&v)
	c.Str[0] = 'y'
	if string(v.Str) != "x" {
		t.Fatal("Copy must not share string buffers")
	}

	n := NullString()
	if Copy(&n).Str != nil {
		t.Fatal("Copy of NULL string must stay NULL")
	}
}

func TestCopy_ResetsLock(t *testing.T) {
	v := NumberValue(1)
	v.Lock = LockFixed
	if Copy(&v).Lock != LockUnlocked {
		t.Fatal("copies are unlocked")
	}
}

func TestDict_Operations(t *testing.T) {
	heap := NewHeap()
	d := heap.NewDict()

	item := NewDictItem("name")
	item.Value = StringValue("vim")
	if !d.Add(item) {
		t.Fatal("Add failed")
	}
	if d.Add(NewDictItem("name")) {
		t.Fatal("duplicate Add should fail")
	}
	if d.Len() != 1 || d.Find("name") != item {
		t.Fatal("Find mismatch")
	}
	if d.Slots() < d.Len() {
		t.Fatal("Slots should cover live entries")
	}

	if !d.Remove(item) || d.Len() != 0 {
		t.Fatal("Remove failed")
	}
	FreeDictItem(item)
	if item.Value.Kind != KindUnknown {
		t.Fatal("FreeDictItem should clear the value")
	}
	FreeDictItem(nil)
}

func TestDict_UnrefFreesNested(t *testing.T) {
	heap := NewHeap()
	d := heap.NewDict()
	inner := heap.NewList()
	item := NewDictItem("l")
	item.Value = ListValue(inner)
	d.Add(item)

	v := DictValue(d)
	Clear(&v)

	if !d.Freed() || !inner.Freed() {
		t.Fatal("dict and nested list should be freed")
	}
	if heap.Len() != 0 {
		t.Fatalf("heap.Len() = %d, want 0", heap.Len())
	}
}

func TestLock(t *testing.T) {
	heap := NewHeap()
	l := heap.NewList()
	d := heap.NewDict()

	l.SetLock(LockLocked)
	d.SetLock(LockLocked)
	if !l.Locked() || !d.Locked() {
		t.Fatal("expected locked")
	}

	l.SetLock(LockUnlocked)
	if l.Locked() {
		t.Fatal("expected unlocked")
	}

	d.SetLock(LockFixed)
	d.SetLock(LockUnlocked)
	if !d.Locked() {
		t.Fatal("fixed lock must stick")
	}
}

func TestList_AtAndEach(t *testing.T) {
	heap := NewHeap()
	l := heap.NewList()
	l.Append(NumberValue(1))
	l.Append(NumberValue(2))
	l.Append(NumberValue(3))

	if l.At(1).Number != 2 {
		t.Fatalf("At(1) = %+v", l.At(1))
	}
	if l.At(-1) != nil || l.At(3) != nil {
		t.Fatal("out of range At should be nil")
	}

	var sum int64
	l.Each(func(i int, v *Value) bool {
		sum += v.Number
		return i < 1
	})
	if sum != 3 {
		t.Fatalf("Each should stop after two items, sum = %d", sum)
	}
}
