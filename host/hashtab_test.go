package host

import (
	"strconv"
	"testing"
)

func TestHashKey(t *testing.T) {
	if hashKey("") != 0 {
		t.Error("empty key should hash to 0")
	}
	if hashKey("a") != 'a' {
		t.Errorf("hashKey(a) = %d", hashKey("a"))
	}
	if hashKey("ab") != 'a'*101+'b' {
		t.Errorf("hashKey(ab) = %d", hashKey("ab"))
	}
}

func TestHashtab_AddFindRemove(t *testing.T) {
	var tab hashtab
	a := NewDictItem("alpha")
	b := NewDictItem("beta")

	if !tab.add(a) || !tab.add(b) {
		t.Fatal("add failed")
	}
	if tab.add(NewDictItem("alpha")) {
		t.Fatal("duplicate key should be rejected")
	}
	if tab.used != 2 {
		t.Fatalf("used = %d, want 2", tab.used)
	}
	if tab.find("alpha") != a || tab.find("beta") != b {
		t.Fatal("find returned wrong item")
	}
	if tab.find("gamma") != nil {
		t.Fatal("find of absent key should be nil")
	}

	if !tab.remove(a) {
		t.Fatal("remove failed")
	}
	if tab.remove(a) {
		t.Fatal("second remove should fail")
	}
	if tab.remove(NewDictItem("beta")) {
		t.Fatal("remove of a different item with same key should fail")
	}
	if tab.find("alpha") != nil {
		t.Fatal("removed key still found")
	}
	if tab.used != 1 {
		t.Fatalf("used = %d, want 1", tab.used)
	}
}

func TestHashtab_TombstonesSkipped(t *testing.T) {
	var tab hashtab
	var items []*DictItem
	for i := 0; i < 8; i++ {
		item := NewDictItem("k" + strconv.Itoa(i))
		items = append(items, item)
		tab.add(item)
	}
	for i := 0; i < 8; i += 2 {
		tab.remove(items[i])
	}

	removed := 0
	for _, s := range tab.slots {
		if s.state == slotRemoved {
			removed++
		}
	}
	if removed != 4 {
		t.Fatalf("expected 4 tombstones, got %d", removed)
	}

	seen := map[string]bool{}
	tab.each(func(item *DictItem) bool {
		seen[item.Key] = true
		return true
	})
	if len(seen) != 4 {
		t.Fatalf("each visited %d items, want 4", len(seen))
	}
	for i := 1; i < 8; i += 2 {
		if !seen["k"+strconv.Itoa(i)] {
			t.Errorf("missing k%d", i)
		}
	}
}

func TestHashtab_TombstoneReused(t *testing.T) {
	var tab hashtab
	a := NewDictItem("x")
	tab.add(a)
	tab.remove(a)
	filled := tab.filled

	tab.add(NewDictItem("x"))
	if tab.filled != filled {
		t.Errorf("re-adding into a tombstone should not grow filled: %d -> %d", filled, tab.filled)
	}
}

func TestHashtab_Grow(t *testing.T) {
	var tab hashtab
	const n = 1000
	for i := 0; i < n; i++ {
		if !tab.add(NewDictItem(strconv.Itoa(i))) {
			t.Fatalf("add %d failed", i)
		}
	}
	if tab.used != n {
		t.Fatalf("used = %d, want %d", tab.used, n)
	}
	if tab.filled*3 >= len(tab.slots)*2 {
		t.Fatalf("table over-full: filled=%d slots=%d", tab.filled, len(tab.slots))
	}
	for i := 0; i < n; i++ {
		if tab.find(strconv.Itoa(i)) == nil {
			t.Fatalf("lost key %d after growth", i)
		}
	}
}

func TestHashtab_ChurnTerminates(t *testing.T) {
	var tab hashtab
	for i := 0; i < 5000; i++ {
		item := NewDictItem("key" + strconv.Itoa(i))
		tab.add(item)
		tab.remove(item)
	}
	if tab.used != 0 {
		t.Fatalf("used = %d, want 0", tab.used)
	}
	if tab.find("key1") != nil {
		t.Fatal("find after churn should miss")
	}
}

func TestHashtab_EachStops(t *testing.T) {
	var tab hashtab
	tab.add(NewDictItem("a"))
	tab.add(NewDictItem("b"))

	n := 0
	tab.each(func(*DictItem) bool {
		n++
		return false
	})
	if n != 1 {
		t.Fatalf("each visited %d, want 1", n)
	}
}
