// Package hatchling scaffolds Next.js + Go projects from an interactive prompt.
package hatchling

// Version is the current hatchling release.
const Version = "0.1.0"
