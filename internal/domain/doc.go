// Package domain defines the tracked records (cycles, pregnancies, weight
// entries, postpartum check-ins), the inputs that create them, and the typed
// prediction results returned to clients.
//
// Records are immutable once stored. Each constructor stamps CreatedAt and
// checks the record's invariants; IDs are assigned by the store.
package domain
