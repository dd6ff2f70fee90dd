// Package sqlite provides the SQLite-based implementation of the record store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. One *sql.DB, opened by NewStore, backs every repository:
//
//   - ResidentStore: the resident registry
//   - MapPinStore: household map pins, unique by name
//   - OfficialStore, BlotterStore, LedgerStore, EventStore: office records
//   - SettingsStore: the single office identity row
//   - HouseholdQuery: read-only household views over residents
//
// # Schema
//
// The embedded files in migrations/ are executed in filename order on every start.
// Each statement is CREATE ... IF NOT EXISTS, so applying them twice is harmless.
// Columns introduced after a table first shipped are added in place when missing,
// and legacy type_ columns are renamed to type. Rows from the legacy barangay_map
// and incomes tables are imported only into tables that have never held a row.
// A table still missing a column afterwards fails startup with ErrSchema.
//
// # Data Location
//
// By default, the database is stored at ~/.barangay/data/barangay.db
//
// # Concurrency
//
// Connections run in WAL mode and every transaction begins IMMEDIATE, so
// concurrent writers queue on the write lock rather than failing mid-transaction.
package sqlite
