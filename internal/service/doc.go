// Package service contains the marketplace use cases: customer registration
// and login, vendor and category reads, and menu item management.
//
// Services receive their stores, password helpers and token service through
// constructor injection. Operations that touch more than one row run inside
// store.RunInTransaction against tx-bound stores. Store sentinels are
// translated into classified domain errors so the API layer can choose a
// status without inspecting storage details.
package service
