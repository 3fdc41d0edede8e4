// Package order holds the repair order aggregate and its status workflow.
//
// An order moves between four kinds of status: in progress (on site or at an
// external workshop), done, suspended and picked up. Three of the four
// (date, time) stamps are filled automatically by transitions:
//
//   - exit when an in-progress order becomes done
//   - return when a done order goes back to work
//   - pickup when a done order is picked up
//
// Automatic stamping only fills halves that are still unset. Values supplied
// by the caller always win and are never re-derived. The equipment of an
// order is fixed at creation.
package order
