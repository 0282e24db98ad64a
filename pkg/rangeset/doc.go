// Package rangeset keeps a set of integers as disjoint half-open ranges
// [start, end) in a btree keyed by start. Overlapping and touching ranges are
// merged on Add; Delete and Query treat touching ranges as disjoint.
package rangeset
