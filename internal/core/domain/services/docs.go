// Package services holds the domain services that work across aggregates and
// need the store to do so:
//
//   - EntityResolver finds or creates clients, equipment and catalog entries
//     from the identity typed at the counter, absorbing duplicate-insert races.
//   - OwnershipLinker keeps exactly one active owner per equipment.
//
// Both run inside the caller's unit of work and never commit on their own.
package services
