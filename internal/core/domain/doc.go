// Package domain defines the core records of the barangay office.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Resident: A person registered with the barangay, optionally linked to a household
//   - MapPin: A household's plotted location on the barangay map
//   - Official: A public officer with a term of office
//   - Blotter: An incident report with a mutable case lifecycle
//   - LedgerEntry: A dated income or expense transaction
//   - Event: An activity organised by the office
//   - Settings: The singleton office identity
//
// Roles, statuses and categories are closed enumerations validated on write
// and stored as text.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
