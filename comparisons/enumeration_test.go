package comparisons

import (
	"testing"

	"github.com/g-m-twostay/ibf/Maps/IBD"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const enumerationItemCount = 256

// llrbItem adapts a uintptr key into the Item ordering GoLLRB requires.
type llrbItem uintptr

func (a llrbItem) Less(b llrb.Item) bool {
	return a < b.(llrbItem)
}

func setupIBD(b *testing.B) *IBD.IBD[uintptr, uintptr] {
	b.Helper()
	d := IBD.New[uintptr, uintptr](4*enumerationItemCount, 0)
	for i := uintptr(0); i < enumerationItemCount; i++ {
		d.Insert(i, i)
	}
	return d
}

func setupBTree(b *testing.B) *btree.BTreeG[uintptr] {
	b.Helper()
	t := btree.NewG[uintptr](32, func(a, b uintptr) bool { return a < b })
	for i := uintptr(0); i < enumerationItemCount; i++ {
		t.ReplaceOrInsert(i)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for i := uintptr(0); i < enumerationItemCount; i++ {
		t.ReplaceOrInsert(llrbItem(i))
	}
	return t
}

// BenchmarkEnumerationIBD measures recovering every pair through the
// peeling decoder, which (unlike the ordered trees below) gives no
// enumeration order and can fail outright if overloaded.
func BenchmarkEnumerationIBD(b *testing.B) {
	d := setupIBD(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		pairs, ok := d.ListAll()
		if !ok || len(pairs) != enumerationItemCount {
			b.Fail()
		}
	}
}

func BenchmarkEnumerationBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		count := 0
		t.Ascend(func(uintptr) bool {
			count++
			return true
		})
		if count != enumerationItemCount {
			b.Fail()
		}
	}
}

func BenchmarkEnumerationLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		count := 0
		t.AscendGreaterOrEqual(llrbItem(0), func(llrb.Item) bool {
			count++
			return true
		})
		if count != enumerationItemCount {
			b.Fail()
		}
	}
}
