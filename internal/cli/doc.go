// Package cli provides the terminal user interface components for
// sshcm.
//
// The package uses [Bubbletea] for the interactive connection picker
// and [Lipgloss] for styling, following the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// The picker is only shown when the command runs on a terminal;
// non-interactive invocations never reach this package.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
