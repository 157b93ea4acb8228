// Package common holds small helpers shared by the client packages.
package common

// WipeByteArray zeroes b. Used for passwords read from the terminal once
// they have been handed to the login request. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
