// Package utils provides helpers shared across the application: identifier
// generation and GUID checks, JSON response writing and the outbound HTTP
// client.
package utils
