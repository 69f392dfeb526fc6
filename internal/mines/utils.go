package mines

// worklist is a FIFO queue of cell indices threaded through a next-index
// array. A cell may be pushed at most once while it is queued.
type worklist struct {
	next       []int
	head, tail int
}

func newWorklist(size int) *worklist {
	return &worklist{next: make([]int, size), head: -1, tail: -1}
}

func (w *worklist) push(i int) {
	if w.tail >= 0 {
		w.next[w.tail] = i
	} else {
		w.head = i
	}
	w.tail = i
	w.next[i] = -1
}

func (w *worklist) pop() (int, bool) {
	if w.head < 0 {
		return 0, false
	}
	i := w.head
	w.head = w.next[i]
	if w.head < 0 {
		w.tail = -1
	}
	return i, true
}
