// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML configuration at ~/.barangay/config.toml, with a
//     filesystem watch that reloads the file when it is edited
package file
