// Package store is the single source of truth for tasks, goals, categories, themes and the
// active theme selection.
//
// # Lifecycle
//
// A [Store] moves through [Uninitialized] → [Hydrating] → [Ready] exactly once, in [Store.Hydrate].
// Mutations before [Ready] fail with [shared.ErrNotReady] and write nothing, so empty in-memory
// defaults can never clobber durable state.
//
// # Mutations
//
// Every operation replaces whole collections instead of editing them in place, then saves each
// replaced collection through the [storage.Adapter]. A [Snapshot] handed out earlier is therefore
// never affected by later writes. Update, delete and toggle on an unknown id are no-ops.
//
// Saves are fire-and-forget: a failed save is logged and the in-memory state stays authoritative.
//
// # Themes
//
// Listeners registered with [Store.Subscribe] receive the resolved active theme and its palette
// variables after hydration and after every change to the theme collection or the active id.
// Notifications are delivered one at a time in commit order; one overtaken by a later commit is
// dropped, so the last theme a listener sees is always the committed one.
package store
