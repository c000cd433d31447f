package db

import "github.com/reldb/reldb/ps"

// Snapshot captures the full engine state. The capture is a deep copy:
// later commands do not alter it.
func (engine *Engine) Snapshot() ps.Snapshot {
	return ps.Export(engine.catalog)
}

// Restore replaces the engine state with the snapshot's tables and rows.
// The command history survives a restore.
func (engine *Engine) Restore(snapshot ps.Snapshot) {
	engine.catalog = ps.Build(snapshot)
}
