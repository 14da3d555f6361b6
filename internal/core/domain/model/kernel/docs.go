// Package kernel contains shared value objects used across the domain
// model: validated identifiers and geographic locations. Types in this
// package are immutable and must be created through their constructor
// functions; zero values fail validation.
package kernel
