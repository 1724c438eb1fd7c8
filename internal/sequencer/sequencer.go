// Package sequencer keeps only the newest of several overlapping async
// operations. Each operation takes a ticket with Next; when it settles it
// asks IsCurrent and applies its result only if no newer ticket exists.
//
// A Sequencer is owned by a single event loop and is not safe for
// concurrent use.
package sequencer

// Sequencer hands out strictly increasing tickets
type Sequencer struct {
	current uint64
}

// Next issues a new ticket, superseding every earlier one
func (s *Sequencer) Next() uint64 {
	s.current++
	return s.current
}

// Current returns the most recently issued ticket, 0 before the first
func (s *Sequencer) Current() uint64 {
	return s.current
}

// IsCurrent reports whether ticket n is still the newest
func (s *Sequencer) IsCurrent(n uint64) bool {
	return n != 0 && n == s.current
}

// Invalidate supersedes all outstanding tickets without issuing a usable one
func (s *Sequencer) Invalidate() {
	s.current++
}
