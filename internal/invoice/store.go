package invoice

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds the current Document. Every mutation builds the next document
// value and swaps it in whole, so readers never observe a partial edit.
// There is exactly one logical writer (the user's current interaction), but
// the store is safe for concurrent snapshots from UI refresh paths.
type Store struct {
	mu  sync.RWMutex
	doc Document
}

// NewStore returns a store seeded with doc.
func NewStore(doc Document) *Store {
	s := &Store{}
	s.Replace(doc)
	return s
}

// Replace swaps in an entirely new document, e.g. one decoded from a share
// link at startup.
func (s *Store) Replace(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Items = cloneItems(doc.Items)
	s.doc = doc
}

// Snapshot returns a copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := s.doc
	doc.Items = cloneItems(s.doc.Items)
	return doc
}

// SetField replaces one scalar header field. Any text is accepted,
// including empty; unknown fields are ignored.
func (s *Store) SetField(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.doc
	switch field {
	case FieldInvoiceNumber:
		next.InvoiceNumber = value
	case FieldDate:
		next.Date = value
	case FieldBillTo:
		next.BillTo = value
	case FieldRecipient:
		next.Recipient = value
	default:
		return
	}
	s.doc = next
}

// AddItem appends a fresh item with a unique identifier, quantity 1 and
// price 0, and returns it.
func (s *Store) AddItem() Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := Item{ID: uuid.NewString(), Quantity: 1, Price: "0"}
	next := s.doc
	next.Items = append(cloneItems(s.doc.Items), item)
	s.doc = next
	return item
}

// UpdateItem replaces one field of the item with the given identifier.
// Price is stored exactly as entered; Quantity is coerced on the way in.
// An unknown identifier leaves the document unchanged.
func (s *Store) UpdateItem(id string, field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := cloneItems(s.doc.Items)
	for i, it := range items {
		if it.ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			items[i].Description = value
		case FieldQuantity:
			items[i].Quantity = CoerceAmount(value)
		case FieldPrice:
			items[i].Price = value
		default:
			return
		}
		next := s.doc
		next.Items = items
		s.doc = next
		return
	}
}

// RemoveItem drops the item with the given identifier; no-op if absent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, 0, len(s.doc.Items))
	for _, it := range s.doc.Items {
		if it.ID == id {
			continue
		}
		items = append(items, it)
	}
	next := s.doc
	next.Items = items
	s.doc = next
}

// Total computes the current grand total.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Total()
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
