package badger

// NewMemoryTableRepository creates an in-memory table repository for testing.
// Caller must close both the repository and the backend when done.
func NewMemoryTableRepository() (*TableRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewTableRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
