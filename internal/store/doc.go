// Package store defines the persistence contracts for vendors, customers,
// categories and menu items, the sentinel errors implementations return, and
// the transaction helper services use to group dependent reads and writes.
package store
