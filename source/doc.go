// Package source provides built-in participant source implementations.
//
// Participant sources supply the roster for the next event.
// The package includes:
//
//   - Static: Fixed list of names
//   - Text: Names parsed from newline separated text
//   - File: Names read from a text file on every call
//
// The text format is one name per line. Leading and trailing whitespace is
// trimmed, and empty lines and lines starting with "#" are skipped, so a
// roster file can keep absent people commented out:
//
//	Anna
//	# Bernd is on vacation
//	Chiara
//
// Custom sources can be implemented by satisfying the types.ParticipantSource interface.
package source
