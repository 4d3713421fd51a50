// Package catalog provides the domain model for purchasable growth packages.
//
// A Package is a catalog offer: a quantity of Instagram followers (or likes,
// views, comments) at a fixed price with a human-readable delivery time label.
// Packages are immutable entities from the order engine's perspective: orders
// snapshot the package fields they need at creation time, so later catalog
// edits or removals never affect historical orders.
//
// The "popular" flag is a display hint only and carries no domain behavior.
package catalog
