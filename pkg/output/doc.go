// Package output renders registry snapshots and replay reports.
//
// Three formats are supported: a styled terminal view (lipgloss, styles from
// pkg/output/styles), plain text, and indented JSON for machines. FormatAuto
// picks terminal or text from the destination with DetectFormat.
package output
