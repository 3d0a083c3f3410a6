package registry

import (
	"context"
	"encoding/json"
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/pkg/must"
	"github.com/fpawel/molcal/internal/stoich"
	"github.com/powerman/structlog"
)

// Entry is a saved compound. MW and Density keep the text as entered.
type Entry struct {
	Name    string `json:"name"`
	MW      string `json:"mw"`
	Density string `json:"density"`
}

// Store persists serialized registry under a key.
// Get returns nil value and nil error when nothing is stored.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

var (
	ErrInvalidEntry = merry.New("compound must have a name and molecular weight or density").
			WithUserMessage("Enter a name and at least one of molecular weight or density.")
	ErrNoEntry = merry.New("no such saved compound")
)

// Registry is an ordered list of saved compounds kept in a Store.
// Entries are not deduplicated.
type Registry struct {
	store   Store
	key     string
	log     *structlog.Logger
	entries []Entry
}

// Open loads the registry stored under key. Unreadable or corrupt data
// is logged and gives an empty registry.
func Open(ctx context.Context, store Store, key string, log *structlog.Logger) *Registry {
	x := &Registry{
		store: store,
		key:   key,
		log:   log,
	}
	b, err := store.Get(ctx, key)
	if err != nil {
		log.PrintErr(merry.Prepend(err, "could not load saved compounds"))
		return x
	}
	if len(b) == 0 {
		return x
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		log.PrintErr(merry.Prepend(err, "could not load saved compounds"))
		return x
	}
	x.entries = entries
	log.Debug("saved compounds loaded", "count", len(entries))
	return x
}

func (e Entry) Validate() error {
	if stoich.IsBlank(e.Name) || (stoich.IsBlank(e.MW) && stoich.IsBlank(e.Density)) {
		return merry.Appendf(ErrInvalidEntry, "%+v", e)
	}
	return nil
}

func (x *Registry) Add(ctx context.Context, e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	entries := make([]Entry, len(x.entries), len(x.entries)+1)
	copy(entries, x.entries)
	return x.save(ctx, append(entries, e))
}

func (x *Registry) Remove(ctx context.Context, i int) error {
	if i < 0 || i >= len(x.entries) {
		return merry.Appendf(ErrNoEntry, "index %d of %d", i, len(x.entries))
	}
	entries := make([]Entry, 0, len(x.entries)-1)
	entries = append(entries, x.entries[:i]...)
	entries = append(entries, x.entries[i+1:]...)
	return x.save(ctx, entries)
}

func (x *Registry) Get(i int) (Entry, error) {
	if i < 0 || i >= len(x.entries) {
		return Entry{}, merry.Appendf(ErrNoEntry, "index %d of %d", i, len(x.entries))
	}
	return x.entries[i], nil
}

func (x *Registry) List() []Entry {
	return append([]Entry(nil), x.entries...)
}

func (x *Registry) Len() int {
	return len(x.entries)
}

func (x *Registry) save(ctx context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	if err := x.store.Put(ctx, x.key, must.MarshalJson(entries)); err != nil {
		return merry.Prepend(err, "could not save compounds")
	}
	x.entries = entries
	x.log.Debug("saved compounds written", "count", len(entries))
	return nil
}
