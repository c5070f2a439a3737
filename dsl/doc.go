// Package dsl provides the shape constructors used with textscan.Decode:
// scalar shapes, Option, bounded and unbounded sequences, tuples, records
// with an ordered field list, maps, and enumerations. Shapes are plain
// values; build them once and reuse them across decode calls.
package dsl
