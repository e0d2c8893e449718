package decorator

// trie maps argument tuples to results, one level per argument. It never
// evicts: every distinct tuple stored stays for the life of the trie.
type trie[O any] struct {
	root *trieNode[O]
	size int
}

type trieNode[O any] struct {
	children map[any]*trieNode[O]
	value    O
	stored   bool
}

func newTrie[O any]() *trie[O] {
	return &trie[O]{root: &trieNode[O]{}}
}

func (t *trie[O]) load(keys []any) (O, bool) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	n := t.root
	for _, k := range keys {
		next, ok := n.children[k]
		if !ok {
			var zero O
			return zero, false
		}
		n = next
	}
	return n.value, n.stored
}

func (t *trie[O]) store(keys []any, value O) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	n := t.root
	for _, k := range keys {
		next, ok := n.children[k]
		if !ok {
			if n.children == nil {
				n.children = make(map[any]*trieNode[O])
			}
			next = &trieNode[O]{}
			n.children[k] = next
		}
		n = next
	}
	if !n.stored {
		t.size++
	}
	n.value, n.stored = value, true
}

func (t *trie[O]) len() int {
	return t.size
}
