package util

import (
	"container/heap"

	"github.com/pombredanne/bitarray"
)

// huffNode is a node of the Huffman tree under construction: either a leaf
// carrying a symbol or an internal node carrying two children.  freq is
// always set; seq records the order the node entered the queue and breaks
// frequency ties.
type huffNode[S comparable] struct {
	freq   uint64
	seq    int
	symbol S
	leaf   bool
	child  [2]*huffNode[S]
}

// nodeHeap is a min-heap of tree nodes ordered by (freq, seq).
type nodeHeap[S comparable] struct {
	list []*huffNode[S]
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap[S]) Push(x any) {
	h.list = append(h.list, x.(*huffNode[S]))
}

func (h *nodeHeap[S]) Pop() any {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[int])(nil)

// HuffmanCode computes a minimum-redundancy prefix code for the given
// frequency map and returns the symbol-to-code mapping, with every code
// under the given endianness or the process default.  No code is a prefix
// of another, and a single-symbol map yields a 1-bit code.
//
// Equal-frequency ties are broken by queue insertion order, which follows
// map iteration; the assignment of codes among tied symbols is therefore
// consistent within one call but not reproducible across processes.  Code
// lengths, and with them the total weighted length, are optimal either way.
func HuffmanCode[S comparable](freqMap map[S]uint64, endian bitarray.Endianness) (map[S]*bitarray.Bitarray, error) {
	if len(freqMap) == 0 {
		return nil, invalidArg("non-empty frequency map expected")
	}
	e, err := resolveEndian(endian)
	if err != nil {
		return nil, err
	}

	// Step 1: one leaf per symbol, all pushed onto a min-heap.
	h := &nodeHeap[S]{list: make([]*huffNode[S], 0, len(freqMap))}
	seq := 0
	for sym, freq := range freqMap {
		h.list = append(h.list, &huffNode[S]{freq: freq, seq: seq, symbol: sym, leaf: true})
		seq++
	}
	heap.Init(h)

	// Step 2: repeatedly combine the two lowest-frequency nodes until one
	// remains, the tree root.  The first node popped becomes the 0-branch.
	for h.Len() > 1 {
		c0 := heap.Pop(h).(*huffNode[S])
		c1 := heap.Pop(h).(*huffNode[S])
		heap.Push(h, &huffNode[S]{
			freq:  c0.freq + c1.freq,
			seq:   seq,
			child: [2]*huffNode[S]{c0, c1},
		})
		seq++
	}
	root := h.list[0]

	result := make(map[S]*bitarray.Bitarray, len(freqMap))
	if root.leaf {
		result[root.symbol] = bitarray.New(1, e)
		return result, nil
	}

	// Step 3: walk the tree with an explicit stack, accumulating the path
	// as the code: bit 0 descends to the first child, bit 1 to the second.
	//
	// stackItem.x tracks progress at each node:
	//   x=0 → neither child processed yet
	//   x=1 → first child done
	//   x=2 → both children done
	type stackItem struct {
		nd     *huffNode[S]
		prefix *bitarray.Bitarray
		x      byte
	}
	stack := []stackItem{{nd: root, prefix: bitarray.New(0, e)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.x == 2 {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.nd.child[top.x]
		code := top.prefix.Copy()
		code.Append(top.x == 1)
		top.x++
		if child.leaf {
			result[child.symbol] = code
		} else {
			stack = append(stack, stackItem{nd: child, prefix: code})
		}
	}
	return result, nil
}
