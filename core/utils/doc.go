// Package utils provides common utility functions for the menu-builder
// application: slug derivation for restaurant URLs and price string
// normalization shared by validation and persistence.
package utils
