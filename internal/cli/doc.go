// Package cli implements the studymap command line.
package cli
