// Package equipment models the devices brought in for repair and the links
// that record who owns them.
//
// An equipment is identified by its serial number when it has one, and by its
// description among serial-less equipment otherwise. Ownership is a history of
// links of which at most one is active at any time; older links are
// deactivated, never removed.
package equipment
