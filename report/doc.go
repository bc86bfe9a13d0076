// Package report renders hulls, joint plans, and query results as
// lipgloss-styled terminal tables, in the playlist-sorter TUI's fixed-width
// plus per-line style convention.
package report
