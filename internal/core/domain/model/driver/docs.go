// Package driver contains the Driver aggregate: a mobile agent with a unique
// identity token, a position on the dispatch grid, and an availability flag.
//
// Driver instances are owned by a registry, which serializes all mutations and
// exposes value-copy snapshots to readers. Code outside the registry never
// holds a live reference across mutation boundaries, so relocations can never
// invalidate an in-flight selection scan.
package driver
