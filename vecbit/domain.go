package vecbit

// DomainKind names the six shapes a span's element region can take. The
// shape decides which elements may be written as whole units and which must
// go through Access bit ops.
type DomainKind int

const (
	// DomainEmpty is a span with no live bits.
	DomainEmpty DomainKind = iota

	// DomainSpanning is a span whose every touched element is fully live.
	DomainSpanning

	// DomainPartialHead is a partially live first element followed by fully
	// live elements to the end.
	DomainPartialHead

	// DomainPartialTail is fully live elements followed by a partially live
	// last element.
	DomainPartialTail

	// DomainMinor is a single element that is not fully live.
	DomainMinor

	// DomainMajor is partially live elements at both edges around a fully
	// live interior.
	DomainMajor
)

// String returns the kind's name.
func (k DomainKind) String() string {
	switch k {
	case DomainEmpty:
		return "Empty"
	case DomainSpanning:
		return "Spanning"
	case DomainPartialHead:
		return "PartialHead"
	case DomainPartialTail:
		return "PartialTail"
	case DomainMinor:
		return "Minor"
	case DomainMajor:
		return "Major"
	default:
		return "unknown"
	}
}

// Domain splits a span's elements into shared partial edges and a fully
// live body that the view owns exclusively. Fields not named by the Kind
// hold zero values:
//
//	Empty:       nothing
//	Spanning:    Body
//	PartialHead: Head, HeadCell, Body (possibly empty)
//	PartialTail: Body (possibly empty), TailCell, Tail
//	Minor:       Head, HeadCell, Tail (the one cell rides in HeadCell)
//	Major:       Head, HeadCell, Body (possibly empty), TailCell, Tail
//
// The cells are borrowed from the span; a Domain is valid only as long as
// the storage it was computed from.
type Domain[T Element] struct {
	Kind DomainKind

	// Head is the position of the first live bit in HeadCell.
	Head Index[T]

	// HeadCell is the partially live first element, nil when the first
	// element is fully live.
	HeadCell *Access[T]

	// Body holds the fully live elements.
	Body []Access[T]

	// TailCell is the partially live last element, nil when the last
	// element is fully live or already carried by HeadCell.
	TailCell *Access[T]

	// Tail is the position one past the last live bit in TailCell (or in
	// HeadCell for a Minor domain).
	Tail Tail[T]
}

// Domain classifies the span's elements by which of them are fully live.
// Classification is computed fresh on every call. The arms are ordered:
// a span ending exactly on its element edge is PartialHead even with a
// single element, a span starting on its element edge is PartialTail, and
// only a single element partial at both ends is Minor. A Minor domain is
// never degraded to a Major with an empty interior; downstream bulk
// dispatch relies on Minor meaning "no interior pass at all".
func (s Span[T]) Domain() Domain[T] {
	w := BitsOf[T]()
	cells := s.Cells()
	switch {
	case s.elts == 0:
		return Domain[T]{Kind: DomainEmpty}
	case s.head.v == 0 && s.tail.v == w:
		return Domain[T]{Kind: DomainSpanning, Body: cells}
	case s.tail.v == w:
		return Domain[T]{
			Kind:     DomainPartialHead,
			Head:     s.head,
			HeadCell: &cells[0],
			Body:     cells[1:],
		}
	case s.head.v == 0:
		return Domain[T]{
			Kind:     DomainPartialTail,
			Body:     cells[:len(cells)-1],
			TailCell: &cells[len(cells)-1],
			Tail:     s.tail,
		}
	case s.elts == 1:
		return Domain[T]{
			Kind:     DomainMinor,
			Head:     s.head,
			HeadCell: &cells[0],
			Tail:     s.tail,
		}
	default:
		return Domain[T]{
			Kind:     DomainMajor,
			Head:     s.head,
			HeadCell: &cells[0],
			Body:     cells[1 : len(cells)-1],
			TailCell: &cells[len(cells)-1],
			Tail:     s.tail,
		}
	}
}

// Parts invokes edge for each partially live edge cell with its live bit
// range, and body for the fully live elements, in storage order: head edge,
// body, tail edge. Either callback may be nil to skip that part.
func (d *Domain[T]) Parts(edge func(cell *Access[T], from, to uint8), body func(cells []Access[T])) {
	if d.HeadCell != nil && edge != nil {
		end := BitsOf[T]()
		if d.Kind == DomainMinor {
			end = d.Tail.v
		}
		edge(d.HeadCell, d.Head.v, end)
	}
	if len(d.Body) > 0 && body != nil {
		body(d.Body)
	}
	if d.TailCell != nil && edge != nil {
		edge(d.TailCell, 0, d.Tail.v)
	}
}
