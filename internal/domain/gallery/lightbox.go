package gallery

// Lightbox is the modal viewer state over a fixed-length list.
type Lightbox struct {
	n     int
	index int
	open  bool
}

func NewLightbox(n int) *Lightbox {
	return &Lightbox{n: n}
}

// Open shows item i. Out of range indexes leave the modal closed.
func (l *Lightbox) Open(i int) bool {
	if i < 0 || i >= l.n {
		return false
	}
	l.index = i
	l.open = true
	return true
}

func (l *Lightbox) Close() {
	l.open = false
}

func (l *Lightbox) IsOpen() bool { return l.open }
func (l *Lightbox) Index() int   { return l.index }
func (l *Lightbox) Len() int     { return l.n }

func (l *Lightbox) Next() int {
	if l.n > 1 {
		l.index = (l.index + 1) % l.n
	}
	return l.index
}

func (l *Lightbox) Prev() int {
	if l.n > 1 {
		l.index = (l.index - 1 + l.n) % l.n
	}
	return l.index
}

// Neighbours returns the indexes Prev and Next would land on without
// moving.
func (l *Lightbox) Neighbours() (prev, next int) {
	if l.n <= 1 {
		return l.index, l.index
	}
	return (l.index - 1 + l.n) % l.n, (l.index + 1) % l.n
}
