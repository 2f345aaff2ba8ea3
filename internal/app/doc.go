// Package app wires configuration, logging and the navigator into the three
// run modes of the indoornav binary: one-shot report, HTTP API and MCP over
// stdio.
package app
