// Package model defines shared data types used across the ranking service.
//
// Conventions:
//   - Prices: integer percent (0-100); a nil pointer means "no price available"
//   - Volumes: int64 contract counts, summed across all constituent quotes
//   - IDs: string tickers throughout (market ticker, event ticker, series ticker)
package model
