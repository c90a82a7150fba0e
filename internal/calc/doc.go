// Package calc implements the deskset calculator: a running value, an
// ordered operation history seeded by an Initial entry, and a display
// string rendered from that history. Division by zero deliberately follows
// floating-point semantics instead of failing.
package calc
