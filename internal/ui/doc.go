// Package ui provides the composition primitives shared by the swipe layout
// and the surfaces it hosts.
//
// Core abstractions:
//   - View: a region with its own model, update and view (Elm-style)
//   - ScrollView: a scrollable text surface backed by a bubbles viewport
//   - TextView: a plain, non-scrolling text surface
//   - Scroller / PointerClaimer: capabilities a host queries before
//     stealing a downward drag from a surface
package ui
