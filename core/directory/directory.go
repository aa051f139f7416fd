package directory

import (
	"strings"
	"sync"
)

// TrackedObject is one kind of object and how many units of it sit in a ledger.
// Inside the Directory only ID and Name are meaningful.
type TrackedObject struct {
	// ID is the object identifier.
	ID string `json:"id"`

	// Name is the display name of the object.
	Name string `json:"name"`

	// Quantity is the number of outstanding units.
	Quantity int `json:"quantity"`
}

// Directory maps normalized identifiers to their canonical metadata.
type Directory struct {
	mu      sync.RWMutex
	objects map[string]TrackedObject
}

// New creates an empty Directory.
func New() *Directory {
	return &Directory{objects: make(map[string]TrackedObject)}
}

// Normalize returns the key under which an identifier is stored.
func Normalize(id string) string {
	return strings.ToUpper(id)
}

// Register stores obj under its normalized identifier unless an entry already exists.
func (d *Directory) Register(obj TrackedObject) {
	key := Normalize(obj.ID)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.objects[key]; exists {
		return
	}
	obj.ID = key
	d.objects[key] = obj
}

// Lookup returns the entry registered for id, in any letter casing.
func (d *Directory) Lookup(id string) (TrackedObject, bool) {
	d.mu.RLock()
	obj, ok := d.objects[Normalize(id)]
	d.mu.RUnlock()
	return obj, ok
}

// Len returns the number of registered identifiers.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.objects)
}
