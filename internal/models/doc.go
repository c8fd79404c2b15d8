// Package models defines the core domain models for the Harvin site backend.
//
// # Models
//
//   - Guest: an allow-listed identifier a family member logs in with
//   - Admin: a credentialed account with full access
//   - Expense: a recorded spend against the running budget
//   - ExtraBudget: an ad hoc budget top-up
//   - VideoLink: a YouTube video shown in the gallery
//
// # Design Principles
//
// 1. **Flat rows**: every model maps one-to-one onto a SQLite table row
// 2. **Server-assigned identity**: IDs (UUID) and CreatedAt (Unix seconds)
// are filled in by the store on insert, except Guest whose ID is the
// admin-chosen login string itself
// 3. **Derived state stays out**: budget totals are computed on read by the
// ledger package and are never persisted
package models
