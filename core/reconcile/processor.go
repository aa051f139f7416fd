package reconcile

import (
	"sort"
	"sync"

	"ledger-manager/core/directory"
)

// ledger maps identifiers, exactly as recorded, to their outstanding entry.
type ledger map[string]*TrackedObject

// Processor applies flow events to the received and shipped ledgers.
type Processor struct {
	mu        sync.Mutex
	directory *directory.Directory
	ledgers   map[Flow]ledger
}

// NewProcessor creates a Processor resolving names through dir.
func NewProcessor(dir *directory.Directory) *Processor {
	return &Processor{
		directory: dir,
		ledgers: map[Flow]ledger{
			FlowReceived: make(ledger),
			FlowShipped:  make(ledger),
		},
	}
}

// Directory returns the registry the processor resolves names through.
func (p *Processor) Directory() *directory.Directory {
	return p.directory
}

// Record applies one unit of id moving in the given flow.
// Unknown flows are ignored.
func (p *Processor) Record(id string, flow Flow) {
	if !flow.IsValid() {
		return
	}

	obj := p.resolve(id)

	p.mu.Lock()
	defer p.mu.Unlock()

	target := p.ledgers[flow]
	opposite := p.ledgers[flow.Opposite()]

	if entry, ok := opposite[id]; ok {
		entry.Quantity--
		if entry.Quantity <= 0 {
			delete(opposite, id)
		}
	}

	if entry, ok := target[id]; ok {
		entry.Quantity++
		return
	}
	target[id] = &TrackedObject{ID: id, Name: obj.Name, Quantity: 1}
}

// resolve returns the Directory entry for id, registering a default one first if needed.
func (p *Processor) resolve(id string) TrackedObject {
	if obj, ok := p.directory.Lookup(id); ok {
		return obj
	}

	key := directory.Normalize(id)
	p.directory.Register(TrackedObject{ID: key, Name: key, Quantity: 1})

	// Another caller may have registered the identifier first.
	if obj, ok := p.directory.Lookup(id); ok {
		return obj
	}
	return TrackedObject{ID: key, Name: key, Quantity: 1}
}

// Clear empties both ledgers. The Directory is left untouched.
func (p *Processor) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for flow := range p.ledgers {
		p.ledgers[flow] = make(ledger)
	}
}

// Snapshot returns a copy of the entries of one ledger sorted by identifier.
func (p *Processor) Snapshot(flow Flow) []TrackedObject {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := p.ledgers[flow]
	out := make([]TrackedObject, 0, len(entries))
	for _, entry := range entries {
		out = append(out, *entry)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out
}

// Quantity returns the outstanding quantity of id in a ledger.
func (p *Processor) Quantity(id string, flow Flow) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.ledgers[flow][id]
	if !ok {
		return 0, false
	}
	return entry.Quantity, true
}
