package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/log"
)

// Store owns the persisted session document. All reads degrade to an empty
// store; the only operation that can fail is Update on an unknown id, which
// is a caller bug rather than a user-facing error.
type Store struct {
	backend Backend
	catalog *catalog.Catalog
	logger  *log.Logger

	// resetDropped is the session count of a version-mismatched document
	// seen by read(), pending a storage_reset log entry on the next write.
	// Guards against logging the reset on every read of a stale store.
	resetDropped int
	resetPending bool
	resetLogged  bool
}

// NewStore creates a Store over the given backend. The catalog fixes the
// checkpoint array length for every node. logger may be nil.
func NewStore(backend Backend, cat *catalog.Catalog, logger *log.Logger) *Store {
	return &Store{backend: backend, catalog: cat, logger: logger}
}

// read loads the document. Absent data, unreadable data, malformed JSON, or
// a version mismatch all yield an empty document. Stale-format data is
// deliberately dropped rather than migrated.
func (s *Store) read() document {
	empty := document{Version: StorageVersion, Sessions: []Session{}}

	data, err := s.backend.Load()
	if err != nil || len(data) == 0 {
		return empty
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return empty
	}
	if doc.Version != StorageVersion {
		if !s.resetLogged {
			s.resetPending = true
			s.resetDropped = len(doc.Sessions)
		}
		return empty
	}
	if doc.Sessions == nil {
		doc.Sessions = []Session{}
	}
	return doc
}

// write persists the document. Failures are logged and swallowed: the write
// is lost but the caller continues. A pending version reset is logged here,
// once, when the emptied document actually replaces the stale one.
func (s *Store) write(doc document) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		_ = s.logger.Append(log.Event{Event: log.EventStorageWriteFail, Error: err.Error()})
		return
	}
	if err := s.backend.Save(data); err != nil {
		_ = s.logger.Append(log.Event{Event: log.EventStorageWriteFail, Error: err.Error()})
		return
	}

	if s.resetPending {
		_ = s.logger.Append(log.Event{Event: log.EventStorageReset, Count: s.resetDropped})
		s.resetPending = false
		s.resetLogged = true
	}
}

// GetAll returns every stored session, most recent first.
func (s *Store) GetAll() []Session {
	return s.read().Sessions
}

// GetByID returns the session with the given id, or nil if unknown.
func (s *Store) GetByID(id string) *Session {
	doc := s.read()
	for i := range doc.Sessions {
		if doc.Sessions[i].ID == id {
			return &doc.Sessions[i]
		}
	}
	return nil
}

// Create builds and persists a new in-progress session. Checkpoint arrays
// are eagerly initialized to all-false for every node that has checkpoints.
// The session is prepended so listings stay most-recent-first.
func (s *Store) Create(companyName, contactPerson string) Session {
	doc := s.read()
	now := time.Now()

	states := make(map[string][]bool)
	for _, n := range s.catalog.Nodes() {
		if len(n.Checkpoints) > 0 {
			states[n.ID] = make([]bool, len(n.Checkpoints))
		}
	}

	sess := Session{
		ID:               uuid.New().String(),
		CompanyName:      companyName,
		ContactPerson:    contactPerson,
		CreatedAt:        now,
		UpdatedAt:        now,
		Status:           StatusInProgress,
		CheckpointStates: states,
	}

	doc.Sessions = append([]Session{sess}, doc.Sessions...)
	s.write(doc)

	_ = s.logger.Append(log.Event{Event: log.EventSessionCreated, SessionID: sess.ID, Company: companyName})
	return sess
}

// Update applies the patch to the stored session, bumping UpdatedAt. The id
// is immutable. Returns an error for an unknown id; callers are expected to
// check existence first.
func (s *Store) Update(id string, patch Patch) (*Session, error) {
	doc := s.read()
	for i := range doc.Sessions {
		if doc.Sessions[i].ID != id {
			continue
		}
		sess := &doc.Sessions[i]
		if patch.CompanyName != nil {
			sess.CompanyName = *patch.CompanyName
		}
		if patch.ContactPerson != nil {
			sess.ContactPerson = *patch.ContactPerson
		}
		if patch.Status != nil {
			sess.Status = *patch.Status
		}
		if patch.Result != nil {
			sess.Result = patch.Result
		}
		if patch.Suggestions != nil {
			sess.Suggestions = patch.Suggestions
		}
		sess.UpdatedAt = time.Now()

		updated := *sess
		s.write(doc)
		return &updated, nil
	}
	return nil, fmt.Errorf("session not found: %s", id)
}

// Delete removes the session by id. No-op if absent.
func (s *Store) Delete(id string) {
	doc := s.read()
	kept := doc.Sessions[:0]
	removed := false
	for _, sess := range doc.Sessions {
		if sess.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	if !removed {
		return
	}
	doc.Sessions = kept
	s.write(doc)
	_ = s.logger.Append(log.Event{Event: log.EventSessionDeleted, SessionID: id})
}

// UpdateCheckpoint sets one checkpoint flag on the session. The node's
// array is lazily created at the catalog-defined length if missing.
// Unknown session or node, and an out-of-range index, are silent no-ops.
func (s *Store) UpdateCheckpoint(sessionID, nodeID string, index int, checked bool) {
	doc := s.read()
	for i := range doc.Sessions {
		if doc.Sessions[i].ID != sessionID {
			continue
		}
		sess := &doc.Sessions[i]

		if sess.CheckpointStates == nil {
			sess.CheckpointStates = make(map[string][]bool)
		}
		if sess.CheckpointStates[nodeID] == nil {
			node := s.catalog.ByID(nodeID)
			if node == nil {
				return
			}
			sess.CheckpointStates[nodeID] = make([]bool, len(node.Checkpoints))
		}
		if index < 0 || index >= len(sess.CheckpointStates[nodeID]) {
			return
		}

		sess.CheckpointStates[nodeID][index] = checked
		sess.UpdatedAt = time.Now()
		s.write(doc)

		_ = s.logger.Append(log.Event{
			Event:     log.EventCheckpointToggled,
			SessionID: sessionID,
			NodeID:    nodeID,
			Index:     index,
			Checked:   checked,
		})
		return
	}
}

// SetResult records the outcome and forces the session to completed.
// No-op if the session is unknown.
func (s *Store) SetResult(sessionID string, result Result) {
	doc := s.read()
	for i := range doc.Sessions {
		if doc.Sessions[i].ID != sessionID {
			continue
		}
		sess := &doc.Sessions[i]
		sess.Result = &result
		sess.Status = StatusCompleted
		sess.UpdatedAt = time.Now()
		s.write(doc)

		_ = s.logger.Append(log.Event{
			Event:     log.EventResultRecorded,
			SessionID: sessionID,
			Outcome:   string(result.Outcome),
		})
		return
	}
}

// Summaries maps every stored session to its derived summary.
func (s *Store) Summaries() []Summary {
	doc := s.read()
	summaries := make([]Summary, 0, len(doc.Sessions))
	for _, sess := range doc.Sessions {
		sum := Summary{
			ID:             sess.ID,
			CompanyName:    sess.CompanyName,
			CreatedAt:      sess.CreatedAt,
			Status:         sess.Status,
			CompletionRate: completionRate(sess),
		}
		if sess.Result != nil {
			sum.Outcome = sess.Result.Outcome
		}
		summaries = append(summaries, sum)
	}
	return summaries
}

// ExportJSON serializes the whole versioned document.
func (s *Store) ExportJSON() string {
	data, err := json.MarshalIndent(s.read(), "", "  ")
	if err != nil {
		return ""
	}
	_ = s.logger.Append(log.Event{Event: log.EventSessionsExported})
	return string(data)
}

// ImportJSON merges a previously exported document into the store. Only
// sessions whose id is not already present are taken, prepended ahead of
// the existing list; duplicates are silently dropped.
func (s *Store) ImportJSON(data string) ImportResult {
	var probe struct {
		Version  int             `json:"version"`
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return ImportResult{Err: "failed to parse JSON"}
	}
	if probe.Version == 0 || !isJSONArray(probe.Sessions) {
		return ImportResult{Err: "invalid file format"}
	}

	var imported document
	if err := json.Unmarshal([]byte(data), &imported); err != nil {
		return ImportResult{Err: "failed to parse JSON"}
	}

	current := s.read()
	existing := make(map[string]bool, len(current.Sessions))
	for _, sess := range current.Sessions {
		existing[sess.ID] = true
	}

	var fresh []Session
	for _, sess := range imported.Sessions {
		if !existing[sess.ID] {
			fresh = append(fresh, sess)
		}
	}

	current.Sessions = append(fresh, current.Sessions...)
	s.write(current)

	_ = s.logger.Append(log.Event{Event: log.EventSessionsImported, Count: len(fresh)})
	return ImportResult{OK: true, Count: len(fresh)}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}
