// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ResidentStore, MapPinStore, OfficialStore, BlotterStore,
//     LedgerStore, EventStore, SettingsStore: one per table, each the sole writer
//   - HouseholdQuery: read-only views derived from residents
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
