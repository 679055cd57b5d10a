package exercise

// Loader parses exercises out of a Store. Nothing is cached: every Load
// reads and parses the definition again.
type Loader struct {
	Store Store
}

// NewLoader creates a loader over a store.
func NewLoader(store Store) *Loader {
	return &Loader{Store: store}
}

// List returns the exercise names of the store.
func (ld *Loader) List() ([]string, error) {
	return ld.Store.List()
}

// Load reads and parses a named exercise. No partial exercise is returned
// on error.
func (ld *Loader) Load(name string) (ex *Exercise, err error) {
	rc, err := ld.Store.Open(name)
	if err != nil {
		return
	}
	defer rc.Close()

	return Parse(name, rc)
}
