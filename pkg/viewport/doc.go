// Package viewport tracks the viewport width and derives the compact layout
// flag used to hide the decorative image panel. A Watcher subscribes to a
// Source on activation and the returned Subscription guarantees the listener
// is removed on deactivation.
package viewport
