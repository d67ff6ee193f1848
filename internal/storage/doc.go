// Package storage is the persistence adapter: the only component that touches durable state.
//
// Values are JSON-encoded and stored under string keys in a [Backend]:
//   - [SQLiteBackend] : a kv_store table created by the shared migrations
//   - [FileBackend] : one <key>.json file per key in a directory
//   - [MemoryBackend] : a process-local map, for tests and ephemeral runs
//
// [Load] never fails. A missing key, a backend read error and an undecodable value all
// yield the caller's fallback; the latter two are logged at warn level.
// [Save] overwrites the previous value and returns backend errors to the caller.
package storage
