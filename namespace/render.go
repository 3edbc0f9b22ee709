package namespace

import "iter"

// renderSubtree lazily yields e's name at depth followed by its descendants
// in pre-order, each one level deeper than its parent.
func renderSubtree(e *Entry, depth int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for d, x := range walkSubtree(e, depth) {
			if !yield(d, x.name) {
				return
			}
		}
	}
}

// walkSubtree is renderSubtree over entries rather than names.
func walkSubtree(e *Entry, depth int) iter.Seq2[int, *Entry] {
	return func(yield func(int, *Entry) bool) {
		e.visit(depth, yield)
	}
}

// visit reports whether the consumer wants more.
func (e *Entry) visit(depth int, yield func(int, *Entry) bool) bool {
	if !yield(depth, e) {
		return false
	}
	if e.children == nil {
		return true
	}
	more := true
	e.children.Ascend(func(c *Entry) bool {
		more = c.visit(depth+1, yield)
		return more
	})
	return more
}
