package rules

// Registry holds both rule tables for the lifetime of a process. It is
// loaded once, never mutated afterwards, and passed explicitly into the
// cleanup pipeline, so sharing it across worker goroutines needs no locking.
type Registry struct {
	correctionsPath string
	fsHackPath      string
	corrections     map[string]string
	fsHack          map[string]string
}

// NewRegistry loads the two rule tables. Either path may be empty, in which
// case that table is empty and the corresponding cleanup stage is a no-op.
func NewRegistry(correctionsPath, fsHackPath string) (*Registry, error) {
	r := &Registry{
		correctionsPath: correctionsPath,
		fsHackPath:      fsHackPath,
		corrections:     map[string]string{},
		fsHack:          map[string]string{},
	}
	if correctionsPath != "" {
		m, err := LoadCorrectionRules(correctionsPath)
		if err != nil {
			return nil, err
		}
		r.corrections = m
	}
	if fsHackPath != "" {
		m, err := LoadFSHackRules(fsHackPath)
		if err != nil {
			return nil, err
		}
		r.fsHack = m
	}
	return r, nil
}

// NewRegistryFromMaps builds a registry from in-memory tables.
func NewRegistryFromMaps(corrections, fsHack map[string]string) *Registry {
	if corrections == nil {
		corrections = map[string]string{}
	}
	if fsHack == nil {
		fsHack = map[string]string{}
	}
	return &Registry{corrections: corrections, fsHack: fsHack}
}

// Corrections returns the general OCR correction dictionary. Callers must
// treat the map as read-only.
func (r *Registry) Corrections() map[string]string { return r.corrections }

// FSHack returns the f/ſ substitution table. Callers must treat the map as
// read-only.
func (r *Registry) FSHack() map[string]string { return r.fsHack }

// CorrectionsPath returns the source path of the dictionary table.
func (r *Registry) CorrectionsPath() string { return r.correctionsPath }

// FSHackPath returns the source path of the f/ſ table.
func (r *Registry) FSHackPath() string { return r.fsHackPath }
