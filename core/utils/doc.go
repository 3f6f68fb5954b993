// Package utils provides common utility functions shared across packages.
// It currently holds the lenient numeric conversions used when decoding
// records from loosely typed JSON backends.
package utils
