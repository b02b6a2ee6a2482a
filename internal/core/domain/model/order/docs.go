// Package order contains the Order value object: a pickup request with an
// identity and a target location. Orders parameterize nearest-driver queries;
// the dispatch core does not store them or assign drivers to them.
package order
