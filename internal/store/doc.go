// Package store persists the tab collection, the active tab id and the
// dark-mode flag.
//
// Adapter maps those three records onto a KV backend under versioned key
// names (tabs.v1, activeTabId.v1, dark-mode). Reads fail soft: missing or
// malformed data yields the zero value and a warn log. Writes are
// fire-and-forget: backend errors are logged and never reach the caller.
//
// Backends:
//
//	sqlite  SQLiteKV, a kv table in ~/.editpad/editpad.db (default)
//	file    FileKV, one JSON file per key, replaced atomically
//	memory  MemoryKV, process-local, used by tests and --ephemeral
package store
