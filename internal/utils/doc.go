// Package utils provides small collaborators shared across the application:
// the system clock that stamps created users and the identifier generator
// used for form sessions.
package utils
