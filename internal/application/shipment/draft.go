package shipment

import (
	"sync"

	"github.com/shopspring/decimal"
)

// DraftItem línea de la remesa en preparación. Guarda el nombre del producto para mostrarla.
type DraftItem struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal cantidad × precio unitario.
func (d DraftItem) Subtotal() decimal.Decimal {
	return d.Quantity.Mul(d.UnitPrice)
}

// DraftStore lista de trabajo por sesión (la remesa que el usuario está armando).
// Vive en memoria del proceso; cada sesión solo ve su propia lista.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string][]DraftItem
}

// NewDraftStore construye un store vacío.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string][]DraftItem)}
}

// Add agrega una línea al final de la lista de la sesión.
func (s *DraftStore) Add(session string, item DraftItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[session] = append(s.drafts[session], item)
}

// Items copia de las líneas de la sesión, en el orden en que se agregaron.
func (s *DraftStore) Items(session string) []DraftItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.drafts[session]
	out := make([]DraftItem, len(items))
	copy(out, items)
	return out
}

// Take saca todas las líneas de la sesión de una vez. Lo agregado después queda en una
// lista nueva; dos finalizaciones concurrentes no reciben las mismas líneas.
func (s *DraftStore) Take(session string) []DraftItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.drafts[session]
	delete(s.drafts, session)
	return items
}

// Restore devuelve items al frente de la lista, antes de lo agregado mientras estaban fuera.
func (s *DraftStore) Restore(session string, items []DraftItem) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]DraftItem, 0, len(items)+len(s.drafts[session]))
	merged = append(merged, items...)
	s.drafts[session] = append(merged, s.drafts[session]...)
}

// Total total preliminar de la sesión.
func (s *DraftStore) Total(session string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items(session) {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Clear descarta la lista de la sesión.
func (s *DraftStore) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, session)
}
