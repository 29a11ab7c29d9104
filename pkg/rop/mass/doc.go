// Package mass lifts solo primitives onto goroutines. Every call starts one
// independent unit of work and hands back a dedicated one-shot channel that
// receives exactly one Result before it is closed.
package mass
