// Package exmini is the engine of a currency exchange ledger viewer.
//
// It turns a loosely typed stream of transaction records into canonical
// transactions and derives everything the views need from them:
//   - Normalize: coerces raw records (aliases, numbers with thousands
//     separators, timestamps instead of dates) into Transactions.
//   - Aggregate: groups transactions into Deals with counts, date range,
//     attribution and total amount.
//   - GenerateDealID: derives collision free deal ids like ACME-05JAN2025-001.
//   - ComputePayable: applies the currency pair rule table to a rate.
//   - EvaluateAlerts: flags conversions missing their payable or rate.
//   - FilterDeals, FilterTransactions: free text search and deal scoping with
//     a total date order.
//   - FormatReport: the plain text per deal summary.
//
// A Ledger is the caller owned list of transactions, persisted in a KeyValue
// store with read-modify-write semantics, and Load obtains one from a remote
// Source with a fallback on the local store.
//
// Deals are never stored: they are recomputed on every query, so that they are
// always a pure function of the transactions.
//
// This package serves as the foundational logic for the `exm` command-line
// tool.
package exmini
