// Package pocket implements a small local-first personal finance ledger:
// signed transactions (income positive, expense negative) recorded in a
// single ledger, persisted wholesale to one JSON file, with derived
// balance, income and expense figures recomputed on every read.
//
// The package holds the data and update core only. Terminal rendering
// lives in the renderer package, and the tally command-line interface in
// the cmd package.
package pocket
