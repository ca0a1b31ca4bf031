package inspect

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// bySlot calls f for every attachment of m in ascending slot order, which is
// the order attachments are written to the preview block. It stops at the
// first error.
func bySlot[V any](m map[uint8]V, f func(slot uint8, v V) error) error {
	tree := rbt.NewWith(utils.UInt8Comparator)
	for slot, v := range m {
		tree.Put(slot, v)
	}

	it := tree.Iterator()
	for it.Next() {
		if err := f(it.Key().(uint8), it.Value().(V)); err != nil {
			return err
		}
	}
	return nil
}
