// Package grouping orders and reshapes collections: SortBy groups elements by
// a computed key and concatenates the groups in key order, Flatten collapses
// nested slices of any depth into one.
package grouping
