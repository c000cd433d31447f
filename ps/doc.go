// Package ps provides snapshot persistence for RelDB.
//
// Engine state is captured as a Snapshot, a JSON document holding every
// table's schema, constraints and rows. Snapshots are kept in a Git
// repository backed by go-git, one commit per save, so every saved
// state stays reachable through its version id.
//
// # Memory Store
//
// For testing or ephemeral databases:
//
//	store, err := ps.NewMemoryStore()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # File Store
//
// For persistent storage:
//
//	store, err := ps.NewFileStore("/path/to/data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Versions
//
// Each Save records an author and a message. Versions lists the full
// history and LoadAt retrieves any past snapshot:
//
//	version, _ := store.Save(snapshot, identity, "nightly backup")
//	old, _ := store.LoadAt(version.Id)
//
// # Remote Transfer
//
// Push and Fetch move snapshots to and from s3://, http(s):// and
// file:// locations.
package ps
