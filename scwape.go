// Package scwape provides a command-line HTML scraper. It loads a document
// from a URL or a local file, selects elements with CSS selectors and prints
// every match through a small format language.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package scwape
