// Package model defines the data types shared across the deckraw library:
// pixel-space geometry, extracted content blocks, slides, contact hints,
// and the root extraction result.
package model
