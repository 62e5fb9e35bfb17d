// Package config loads, merges and validates the ERP API configuration.
//
// Configuration is assembled from several sources. When the same field is
// set in more than one source, the first non-zero value wins in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c)
//
// Defaults fill whatever is still zero, then the result is validated.
// The entry point is [GetStructuredConfig].
package config
