// Package reconcile persists a client-edited menu draft to durable storage
// in one transaction.
//
// The draft is a partially-synthetic tree: entities the store has never seen
// carry temporary identifiers, and four change-tracking sets describe what
// the edit session touched. The engine reconciles that tree against the
// database, creating, updating, deleting, and reordering rows while mapping
// temporary identifiers to durable ones and rewriting the dish→category
// references that depend on them.
//
// # Phases
//
// One save runs six strictly ordered phases inside a single transaction
// provided by the Gateway:
//
//  1. Restaurant upsert (slug uniqueness and ownership enforced here)
//  2. Deletions — dishes, then categories (category deletion cascades to its
//     remaining dishes as a gateway contract)
//  3. Categories — temporary ones are deduplicated by exact name against
//     existing rows or inserted; durable ones are updated with a
//     rename-collision check
//  4. Dishes — inserted or updated with their category reference resolved;
//     an unresolvable reference skips the dish and reports it
//  5. Order writing — one pass per sibling group, zero-based dense
//  6. Read-back — the full ordered tree is re-queried and returned as the
//     client's new baseline
//
// # Failure policy
//
// Validation and conflict errors abort before any write. A dish whose
// category reference cannot be resolved is the single locally-recovered
// case: it is skipped, counted, and reported while the rest of the save
// proceeds. Store failures roll the transaction back; phases never apply
// partially.
//
// # Concurrency
//
// Phases are sequential; phase N's inputs depend on phase N-1's resolved
// identifiers. Two overlapping saves for the same restaurant race with
// last-write-wins row semantics — acceptable for the single-editor workflow
// this serves.
package reconcile
