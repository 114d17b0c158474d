// Package process provides platform-specific control over the office
// suite processes started or automated during a conversion.
package process
