// Package model holds read-only projections of the upstream governance data.
// Values are decoded fresh from each response and discarded after formatting.
package model
