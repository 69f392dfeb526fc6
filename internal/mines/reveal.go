package mines

// revealFrom expands an already opened cell across contiguous zero-count
// cells. Every neighbor of a processed cell is opened; only zero-count cells
// are queued for further expansion, so no mine is ever reached. It returns
// the number of cells the cascade opened.
func (b *Board) revealFrom(index int) int {
	if c := b.cells[index]; c.Status == Mine || c.Adjacent != 0 {
		return 0
	}

	opened := 0
	todo := newWorklist(len(b.cells))
	todo.push(index)
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		for _, j := range Neighbors(i, b.cells[i].Class, b.width) {
			if b.cells[j].Opened {
				continue
			}
			b.open(j)
			opened++
			if b.cells[j].Status == Empty && b.cells[j].Adjacent == 0 {
				todo.push(j)
			}
		}
	}
	return opened
}
