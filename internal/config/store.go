package config

// Change is delivered to subscribers after a field value changes.
type Change struct {
	Field string
	Old   Settings
	New   Settings
}

// Store owns the live settings. It is confined to the window loop goroutine.
type Store struct {
	current     Settings
	subscribers map[int]func(Change)
	order       []int
	nextID      int
}

func NewStore(initial Settings) *Store {
	return &Store{
		current:     initial,
		subscribers: map[int]func(Change){},
	}
}

// Current returns a copy of the settings.
func (s *Store) Current() Settings { return s.current }

// Subscribe registers fn for every future change. The returned func removes it.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.order = append(s.order, id)
	return func() {
		delete(s.subscribers, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// SetNumber snaps v to the field's step and range and stores it.
// Subscribers are notified only when the stored value actually changes.
func (s *Store) SetNumber(name string, v float64) error {
	f, err := Lookup(name)
	if err != nil {
		return err
	}
	if f.Kind == KindRange {
		v = f.Snap(v)
	}
	next := s.current
	if err := next.setNumber(name, v); err != nil {
		return err
	}
	s.commit(name, next)
	return nil
}

// Toggle flips a checkbox field.
func (s *Store) Toggle(name string) error {
	v, err := s.current.Number(name)
	if err != nil {
		return err
	}
	if v == 0 {
		return s.SetNumber(name, 1)
	}
	return s.SetNumber(name, 0)
}

func (s *Store) commit(name string, next Settings) {
	if next == s.current {
		return
	}
	c := Change{Field: name, Old: s.current, New: next}
	s.current = next
	order := append([]int(nil), s.order...)
	for _, id := range order {
		if fn, ok := s.subscribers[id]; ok {
			fn(c)
		}
	}
}
