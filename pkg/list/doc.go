// Package list implements a singly linked list of ints in which every node
// owns its tail, together with a concurrent in-place map.
//
// Common usage:
// - Construct: build start, start+1, ... of a given length
// - MapConcurrent/TryMapConcurrent: transform every value, one goroutine per node
// - Render: "10, 11, 12, " style rendering that leaves the list untouched
package list
