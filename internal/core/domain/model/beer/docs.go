// Package beer contains the catalog side of the domain model. A Beer is a
// standalone record with its own surrogate identity and optimistic-concurrency
// version; order lines reference beers read-only and never own them.
package beer
