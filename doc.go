// Package ledgerbook implements the storage and statistics core of a
// personal-finance record keeper.
//
// A ledger is a named, currency-fixed collection of dated income and expense
// records, owned by a user or by the anonymous "local" guest. Ledgers are
// persisted one per file, in a human-readable JSONL format that is
// git-friendly: the first line declares the ledger currency, every following
// line is one record.
//
// The package exposes four collaborating components:
//
//   - Store: reads and writes one ledger's records by (owner, name) key.
//   - Registry: enumerates, creates, renames and deletes ledgers, and
//     migrates guest ledgers into a user account on login.
//   - Converter: converts amounts between the supported currencies using a
//     static rate table.
//   - Summarize and friends: aggregate records by year, month or in total,
//     expressed in a single display currency.
//
// All results are plain structs with no formatting, so any presentation
// layer (terminal, web, API) can sit on top.
package ledgerbook
