package IBD

import (
	"math/rand"
	"testing"

	"github.com/g-m-twostay/ibf/ibfutil"
)

var rg = *rand.New(rand.NewSource(0))

func TestNewEmpty(t *testing.T) {
	d := New[uint64, uint64](64, 1)
	if d.Size() != 0 {
		t.Errorf("Size() = %d, want 0", d.Size())
	}
	pairs, ok := d.ListAll()
	if !ok || len(pairs) != 0 {
		t.Errorf("ListAll() on empty dictionary = %v, %v, want [], true", pairs, ok)
	}
}

func TestInsertGet(t *testing.T) {
	d := New[uint64, uint32](256, 7)
	want := make(map[uint64]uint32)
	for i := 0; i < 100; i++ {
		k, v := rg.Uint64(), rg.Uint32()
		d.Insert(k, v)
		want[k] = v
	}
	for k, v := range want {
		got, ok := d.Get(k)
		if ok && got != v {
			t.Errorf("Get(%d) = %d, want %d", k, got, v)
		}
	}
}

func TestRemoveRequiresPriorGet(t *testing.T) {
	d := New[uint64, uint64](256, 7)
	keys := make([]uint64, 0, 20)
	for i := 0; i < 20; i++ {
		k, v := rg.Uint64(), rg.Uint64()
		d.Insert(k, v)
		keys = append(keys, k)
	}
	for _, k := range keys {
		if _, ok := d.Get(k); ok {
			d.Remove(k)
		}
	}
	if d.Size() != 0 {
		t.Errorf("Size() after removing every key with a definitive Get = %d, want 0", d.Size())
	}
}

func TestListAllRecoversInserted(t *testing.T) {
	d := New[uint32, uint32](512, 3)
	want := make(map[uint32]uint32)
	for i := 0; i < 150; i++ {
		k, v := rg.Uint32(), rg.Uint32()
		d.Insert(k, v)
		want[k] = v
	}
	got, ok := d.ListAll()
	if !ok {
		t.Fatalf("ListAll() ok = false, want true at this load factor")
	}
	if len(got) != len(want) {
		t.Fatalf("ListAll() returned %d pairs, want %d", len(got), len(want))
	}
	for _, p := range got {
		wv, present := want[p.Key]
		if !present {
			t.Errorf("ListAll() returned key %d, which was never inserted", p.Key)
			continue
		}
		if wv != p.Value {
			t.Errorf("ListAll() paired key %d with value %d, want %d", p.Key, p.Value, wv)
		}
	}
}

func TestListAllFailsWhenOverloaded(t *testing.T) {
	d := New[uint16, uint16](8, 3)
	for i := 0; i < 200; i++ {
		d.Insert(uint16(rg.Uint32()), uint16(rg.Uint32()))
	}
	before := d.Size()
	_, ok := d.ListAll()
	if ok {
		t.Fatalf("ListAll() ok = true, want false when badly overloaded")
	}
	if d.Size() != before {
		t.Errorf("Size() changed from %d to %d after a failed ListAll", before, d.Size())
	}
}

func TestContainsNotFoundForAbsentKey(t *testing.T) {
	d := New[uint64, uint64](1024, 5)
	for i := 0; i < 10; i++ {
		d.Insert(rg.Uint64(), rg.Uint64())
	}
	var absent uint64 = 0xdeadbeefcafef00d
	if r := d.Contains(absent); r != ibfutil.NotFound {
		t.Errorf("Contains(%d) = %v for a key that was never inserted, want not_found", absent, r)
	}
}
