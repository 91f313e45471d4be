// Package view provides the rendering functions for the TUI.
//
// Views are pure: they take a snapshot of model state and a width and return
// a string. They never mutate state or issue commands.
package view
