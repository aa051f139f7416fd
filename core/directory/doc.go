// Package directory provides the canonical identifier -> display name registry.
//
// Every identifier is normalized to its uppercase form before it is stored or
// looked up, so lookups are case-insensitive. Entries are write-once: the first
// registration of a normalized identifier wins and later registrations are no-ops.
// There is no removal operation; the registry lives as long as the process.
//
// # Usage
//
//	dir := directory.New()
//	dir.Register(directory.TrackedObject{ID: "abc", Name: "Pallet"})
//	obj, ok := dir.Lookup("ABC") // ok == true, obj.Name == "Pallet"
package directory
