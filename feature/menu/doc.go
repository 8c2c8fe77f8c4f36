// Package menu is the application feature for building and persisting
// restaurant menus. It exposes the draft save operation, standalone sibling
// reordering, and a cached menu read, all over the reconcile engine in
// feature/menu/reconcile.
package menu
