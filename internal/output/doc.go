// Package output renders process snapshots, argument vectors, and liveness
// verdicts for the CLI.
//
// Two formatters share the Formatter interface: a colorized tabular text
// formatter and a JSON formatter for machine consumption. Formatters never
// query the kernel; they work purely from collected metadata.
package output
