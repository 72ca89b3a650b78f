// Package beerorder contains the order aggregate of the domain model: the
// BeerOrder root, its exclusively-owned BeerOrderLine collection with
// composite line identity (order id, beer id), and the order/line lifecycle
// enumerations. Placement only ever produces NEW orders; later lifecycle
// states exist in the enumeration but are driven by other systems.
package beerorder
