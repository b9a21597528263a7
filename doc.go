// Package tote computes the dividends of pari-mutuel betting pools.
//
// Bets are accumulated per product into a Ledger, then a race Result settles
// every product of the registry:
//   - Win: the net pool is shared by the stakes on the first place.
//   - Place: the net pool is split in three, one share for each of the first
//     three places.
//   - Exacta: the net pool is shared by the stakes on the exact first and
//     second places.
//
// The net pool is what remains once the product commission is withheld.
// Amounts are exact decimals and are only rounded, half-up to cents, when
// displayed.
//
// Input is line oriented, e.g.
//
//	bet:w:1:100
//	bet:e:1,2:40
//	result:1:2:3
//
// A Session reads such lines until the result and returns the Report. This
// package serves as the foundational logic for the `tote` command-line tool.
package tote
