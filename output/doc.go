// Package output renders ranked dish lists for the supported output
// formats: a one-line-per-dish summary, a detailed text report, a full
// JSON document, and a compact JSON list.
package output
