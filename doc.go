// Package finbook provides the core of a small personal finance ledger:
// income and expense transactions recorded against named accounts, budgets
// tracking per-category limits versus actual spending, and persistence of the
// whole state as three flat comma-delimited files.
//
// The core functionalities include:
//   - Domain Model: Transaction, Account and Budget entities and their
//     mutation rules (applying a transaction to an account balance,
//     accumulating spending into a budget).
//   - Persistence Codec: a line-oriented, delimiter-joined text format for
//     each entity type, and the load-time reconciliation that rebuilds
//     account-to-transaction ownership from persisted ID references.
//   - Ledger Service: ownership of the in-memory collections, sequential
//     transaction ID assignment, budget matching rules, and aggregate queries
//     (total balance, per-category spending, date-ordered transaction lists).
//
// This package serves as the foundational logic for the `fbk` command-line
// tool; all user-facing commands call into the operations defined here.
package finbook
