// Package api is the HTTP surface of the marketplace. It wires the route
// table, binds validated input to the domain services, and shapes every
// response into the common envelope.
package api
