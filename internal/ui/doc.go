// Package ui contains the Bubble Tea program that drives a page viewer
// session. Model owns a state.Session and a store.Store and translates
// terminal events into session transitions.
//
// Message flow:
//   - Key presses run through the built-in key table (navigation, scrolling,
//     dock/popup toggles, quit) or edit the query buffer, then go to the
//     embedder's KeyHandler, whose returned session replaces the current one.
//   - Every key press schedules a debounce tick. A tick that is still the
//     latest one when it fires means input has been idle for a full window,
//     and a changed query is evaluated against the store at that point.
//   - Mouse presses dismiss the popup; the wheel scrolls the reader.
//
// Rendering lives in view.go and only reads session state.
package ui
