// Package jsonfile persists the entire entity graph as a single
// pretty-printed JSON document. Every load reads the whole file and
// every save rewrites it in full; there is no locking and no partial
// write protection.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"project-manager/internal/domain"
	"project-manager/internal/errors"
)

// Document is the in-memory form of the persisted document: all users
// plus the id allocators seeded past every id seen in the file.
type Document struct {
	Users    []*domain.User
	Counters *domain.Counters
}

// Store reads and writes the backing JSON document.
type Store struct {
	path   string
	perms  os.FileMode
	schema *jsonschema.Schema
	logger *log.Logger
}

// New creates a store for the document at path. The permission bits are
// used when creating the containing directory.
func New(path string, perms os.FileMode, logger *log.Logger) (*Store, error) {
	schema, err := compileDocumentSchema()
	if err != nil {
		return nil, errors.NewStorageError("compile document schema", err)
	}
	return &Store{
		path:   path,
		perms:  perms,
		schema: schema,
		logger: logger,
	}, nil
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document. A missing file is first-run behavior
// and yields an empty collection; a file that cannot be parsed or does
// not match the expected structure is logged and also yields an empty
// collection, silently discarding prior data. The returned counters
// are advanced past the maximum id of each entity kind.
func (s *Store) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	empty := &Document{
		Users:    []*domain.User{},
		Counters: domain.NewCounters(),
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		s.logger.Error("could not read data file, starting fresh", "path", s.path, "err", err)
		return empty, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.Error("data file is corrupted or malformed, starting fresh", "path", s.path, "err", err)
		return empty, nil
	}

	if err := s.schema.Validate(decoded); err != nil {
		s.logger.Error("data file is missing expected fields, starting fresh", "path", s.path, "err", err)
		return empty, nil
	}

	var users []*domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		s.logger.Error("could not rebuild entities from data file, starting fresh", "path", s.path, "err", err)
		return empty, nil
	}

	doc := &Document{
		Users:    users,
		Counters: domain.NewCounters(),
	}
	for _, u := range doc.Users {
		normalizeUser(u)
		doc.Counters.ObserveUser(u)
	}
	return doc, nil
}

// Save serializes every user and overwrites the backing document in
// full, pretty-formatted. The containing directory is created if
// needed. Failures are logged and returned to the caller.
func (s *Store) Save(ctx context.Context, users []*domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if users == nil {
		users = []*domain.User{}
	}

	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		s.logger.Error("could not serialize data", "err", err)
		return errors.NewStorageError("serialize document", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), s.perms); err != nil {
		s.logger.Error("could not create data directory", "path", filepath.Dir(s.path), "err", err)
		return errors.NewStorageError("create data directory", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Error("could not save data", "path", s.path, "err", err)
		return errors.NewStorageError("write document", err)
	}

	return nil
}

// normalizeUser fills in the defaults for fields that are optional on
// read but mandatory on write.
func normalizeUser(u *domain.User) {
	if u.Projects == nil {
		u.Projects = []*domain.Project{}
	}
	for _, p := range u.Projects {
		if p.Tasks == nil {
			p.Tasks = []*domain.Task{}
		}
		for _, t := range p.Tasks {
			if t.Status == "" {
				t.Status = domain.StatusPending
			}
		}
	}
}
