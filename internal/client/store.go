package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trackfit/trackfit/internal/workout"
)

// Store abstracts the client's persisted state so commands and tests don't
// touch the filesystem directly.
type Store interface {
	Session() (*Session, error)
	SaveSession(session *Session) error
	ClearSession() error
	Plan() (*workout.Plan, error)
	SavePlan(plan *workout.Plan) error
	ClearPlan() error
}

// state is the on-disk document. Dates inside the plan are rehydrated by
// encoding/json on load.
type state struct {
	Version int           `json:"version"`
	Session *Session      `json:"session,omitempty"`
	Plan    *workout.Plan `json:"workoutPlan,omitempty"`
}

// FileStore keeps the session and cached workout plan in a single JSON
// file, the CLI's equivalent of the browser's local storage.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStatePath is the state file location under the user config dir.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "trackfit", "state.json"), nil
}

func (s *FileStore) Session() (*Session, error) {
	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return st.Session, nil
}

func (s *FileStore) SaveSession(session *Session) error {
	return s.mutate(func(st *state) {
		st.Session = session
	})
}

func (s *FileStore) ClearSession() error {
	return s.mutate(func(st *state) {
		st.Session = nil
	})
}

func (s *FileStore) Plan() (*workout.Plan, error) {
	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return st.Plan, nil
}

func (s *FileStore) SavePlan(plan *workout.Plan) error {
	return s.mutate(func(st *state) {
		st.Plan = plan
	})
}

func (s *FileStore) ClearPlan() error {
	return s.mutate(func(st *state) {
		st.Plan = nil
	})
}

func (s *FileStore) load() (*state, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &state{Version: 1}, nil
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	st := &state{}
	err = json.Unmarshal(data, st)
	if err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return st, nil
}

func (s *FileStore) mutate(fn func(st *state)) error {
	st, err := s.load()
	if err != nil {
		return err
	}

	fn(st)

	dir := filepath.Dir(s.path)
	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	err = os.WriteFile(s.path, data, 0600)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
