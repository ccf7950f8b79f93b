// Package store provides string key-value backends for the badge slot: an
// in-memory map and a SQLite table. Both satisfy calculator.Store, as does the
// Fyne preferences store used by default.
package store
