// Package services implements the driving port interfaces.
// Services validate input, dispatch saves to insert or update,
// and turn store results into domain errors.
//
// Services are pure Go and depend only on driven ports.
package services
