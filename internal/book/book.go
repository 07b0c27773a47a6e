package book

// Book is the contact directory: records keyed by contact name.
// Iteration order is insertion order, so listings are deterministic.
type Book struct {
	records map[string]*Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts rec under its name. An existing record with the same name is
// replaced outright (last write wins) and keeps its original listing slot.
func (b *Book) Add(rec *Record) {
	name := rec.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name. Absent names are a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records in the book.
func (b *Book) Len() int {
	return len(b.records)
}

// Names returns the contact names in insertion order.
func (b *Book) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}
