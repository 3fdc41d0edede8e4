// Package kernel holds the value objects shared by every aggregate of the
// repair shop: identifiers, the clock used for automatic stamps, the
// (date, time) stamp pair itself and money amounts.
//
// All values are immutable and safe to copy.
package kernel
