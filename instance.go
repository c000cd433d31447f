package reldb

import (
	"errors"

	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/db"
	"github.com/reldb/reldb/ps"
)

var ErrNoStore = errors.New("instance has no store")

// Instance binds one engine to an optional snapshot store. Instances are
// fully independent: two instances never share tables, rows or history.
type Instance struct {
	engine *db.Engine
	store  *ps.Store
}

// Open creates an instance. A nil store gives a purely in-memory
// instance for which Save and Load return ErrNoStore.
func Open(store *ps.Store) *Instance {
	return &Instance{
		engine: db.NewEngine(),
		store:  store,
	}
}

func (instance *Instance) Engine() *db.Engine {
	return instance.engine
}

func (instance *Instance) Store() *ps.Store {
	return instance.store
}

// Save captures the engine state and commits it to the store.
func (instance *Instance) Save(identity core.Identity, message string) (ps.Version, error) {
	if instance.store == nil {
		return ps.Version{}, ErrNoStore
	}
	return instance.store.Save(instance.engine.Snapshot(), identity, message)
}

// Load replaces the engine state with the store's latest snapshot.
func (instance *Instance) Load() error {
	if instance.store == nil {
		return ErrNoStore
	}
	snapshot, err := instance.store.Load()
	if err != nil {
		return err
	}
	instance.engine.Restore(snapshot)
	return nil
}

// LoadAt replaces the engine state with the snapshot at a past version.
func (instance *Instance) LoadAt(id string) error {
	if instance.store == nil {
		return ErrNoStore
	}
	snapshot, err := instance.store.LoadAt(id)
	if err != nil {
		return err
	}
	instance.engine.Restore(snapshot)
	return nil
}
