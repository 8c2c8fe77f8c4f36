// Package models defines the durable menu entities (Restaurant, Category,
// Dish), the draft tree the client edits, and the ID type that distinguishes
// durable identifiers from client-synthesized temporary ones.
//
// # Identifiers
//
// ID is a two-variant value: Durable(uint) assigned by the store, or
// Temp(token) synthesized by the client for not-yet-persisted entities. The
// reserved "tmp_" wire prefix is parsed exactly once, in ID's JSON methods;
// downstream code switches on the variant.
//
// # Draft
//
// Draft models an edit session: a tree of category and dish drafts in
// client-desired order plus four change-tracking sets (changed categories,
// changed dishes, deleted categories, deleted dishes). Mutation methods keep
// the sets consistent — a delete wins over a pending update, and deleting a
// never-persisted entity leaves no trace in the deleted sets.
package models
