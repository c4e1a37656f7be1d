// Package collection provides the container types a fixture can declare besides
// builtin slices and maps, and the reflective factory the engine uses to create
// and fill them.
//
// Every container is usable through its zero value. Sequence containers accept
// elements through an Add method; mapping containers accept pairs through Put.
package collection
