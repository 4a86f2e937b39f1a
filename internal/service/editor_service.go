package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"go-stock-admin/internal/model"
	"go-stock-admin/internal/repository"
)

var ErrNoDraft = errors.New("no draft for this cell")

// BulkReport aggregates the outcome of a bulk commit.
type BulkReport struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// EditorService tracks pending (uncommitted) stock values per product/color
// cell and commits them individually through the stock gateway.
//
// At most one draft exists per cell; starting a new edit overwrites any
// previous one (last-write-wins). A commit never patches the snapshot
// locally: on success the snapshot is invalidated and re-fetched in full,
// since the canonical state lives server-side.
type EditorService interface {
	// BeginEdit marks the cell editable and pre-fills the draft with the
	// variant's current stock. Returns the pre-filled value.
	BeginEdit(key model.EditKey) (int, error)
	// UpdateDraft stores a candidate value. Non-numeric input is coerced
	// to 0, never rejected. Returns the stored value.
	UpdateDraft(key model.EditKey, raw string) (int, error)
	// Draft returns the pending value for the cell, if any.
	Draft(key model.EditKey) (int, bool)
	// Drafts returns a copy of the whole draft overlay.
	Drafts() map[model.EditKey]int
	// Commit sends the draft to the gateway. On success the draft is
	// cleared and the snapshot invalidated; on failure the draft stays so
	// the user's input is not lost.
	Commit(key model.EditKey, actor Actor) error
	// Cancel discards the draft without any network call.
	Cancel(key model.EditKey)
	// BulkCommit applies commit semantics to each update in order,
	// best-effort, and emits a single aggregated notification.
	BulkCommit(updates []model.StockUpdate, actor Actor) BulkReport
}

type editorService struct {
	snapshots SnapshotService
	gateway   StockGateway
	changes   repository.StockChangeRepository
	notifier  Notifier

	mu     sync.Mutex
	drafts map[model.EditKey]int
	// seq fences in-flight commits: every draft mutation and commit
	// issuance bumps the cell's sequence, and a gateway response only
	// applies its draft-clear when its sequence is still the latest.
	seq map[model.EditKey]uint64
}

func NewEditorService(snapshots SnapshotService, gateway StockGateway, changes repository.StockChangeRepository, notifier Notifier) EditorService {
	return &editorService{
		snapshots: snapshots,
		gateway:   gateway,
		changes:   changes,
		notifier:  notifier,
		drafts:    make(map[model.EditKey]int),
		seq:       make(map[model.EditKey]uint64),
	}
}

// CoerceStock parses raw user input into a stock count. Non-numeric input
// becomes 0 (explicit policy: never reject silently without a visible
// value), and negative input is clamped to 0 to keep counts non-negative.
func CoerceStock(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *editorService) BeginEdit(key model.EditKey) (int, error) {
	_, variant, err := s.snapshots.Variant(key)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.drafts[key] = variant.Stock
	s.seq[key]++
	s.mu.Unlock()

	return variant.Stock, nil
}

func (s *editorService) UpdateDraft(key model.EditKey, raw string) (int, error) {
	value := CoerceStock(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[key]; !ok {
		return 0, ErrNoDraft
	}
	s.drafts[key] = value
	s.seq[key]++
	return value, nil
}

func (s *editorService) Draft(key model.EditKey) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.drafts[key]
	return value, ok
}

func (s *editorService) Drafts() map[model.EditKey]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[model.EditKey]int, len(s.drafts))
	for k, v := range s.drafts {
		out[k] = v
	}
	return out
}

func (s *editorService) Cancel(key model.EditKey) {
	s.mu.Lock()
	if _, ok := s.drafts[key]; ok {
		delete(s.drafts, key)
		s.seq[key]++
	}
	s.mu.Unlock()
}

func (s *editorService) Commit(key model.EditKey, actor Actor) error {
	return s.commit(key, actor, false)
}

func (s *editorService) commit(key model.EditKey, actor Actor, quiet bool) error {
	s.mu.Lock()
	value, ok := s.drafts[key]
	if !ok {
		s.mu.Unlock()
		return ErrNoDraft
	}
	s.seq[key]++
	issued := s.seq[key]
	s.mu.Unlock()

	// Resolved before the gateway call so the journal can record the old
	// value; best effort, the commit itself only needs the key and draft.
	product, variant, lookupErr := s.snapshots.Variant(key)

	if err := s.gateway.UpdateStock(key.ProductID, key.ColorIndex, value); err != nil {
		if !quiet {
			s.notifier.Notify(model.NoticeError, fmt.Sprintf("Failed to update stock for %s: %v", cellName(product, variant, key), err))
		}
		return fmt.Errorf("commit stock update: %w", err)
	}

	// The server state changed regardless of draft fencing below.
	s.snapshots.Invalidate()

	s.mu.Lock()
	stale := s.seq[key] != issued
	if !stale {
		delete(s.drafts, key)
	}
	s.mu.Unlock()
	if stale {
		// A newer draft or commit superseded this one; its response must
		// not clear state or announce success for an outdated value.
		return nil
	}

	if s.changes != nil && lookupErr == nil {
		entry := &model.StockChange{
			ProductID:   key.ProductID,
			ProductName: product.Name,
			ColorName:   variant.Name,
			ColorIndex:  key.ColorIndex,
			OldStock:    variant.Stock,
			NewStock:    value,
			ActorName:   actor.Name,
			ActorEmail:  actor.Email,
		}
		entry.CreatedBy = actor.ID
		entry.UpdatedBy = actor.ID
		if err := s.changes.Record(entry); err != nil {
			log.Printf("Warning: failed to journal stock change: %v", err)
		}
	}

	if !quiet {
		s.notifier.Notify(model.NoticeSuccess, fmt.Sprintf("Updated stock for %s to %d", cellName(product, variant, key), value))
	}
	return nil
}

func (s *editorService) BulkCommit(updates []model.StockUpdate, actor Actor) BulkReport {
	var report BulkReport

	for _, u := range updates {
		key := u.Key()
		value := CoerceStock(u.Value)

		s.mu.Lock()
		s.drafts[key] = value
		s.seq[key]++
		s.mu.Unlock()

		if err := s.commit(key, actor, true); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s[%d]: %v", u.ProductID, u.ColorIndex, err))
			continue
		}
		report.Succeeded++
	}

	level := model.NoticeSuccess
	if report.Failed > 0 {
		level = model.NoticeError
	}
	s.notifier.Notify(level, fmt.Sprintf("Bulk stock update: %d succeeded, %d failed", report.Succeeded, report.Failed))

	return report
}

func cellName(product model.Product, variant model.ColorVariant, key model.EditKey) string {
	if product.Name == "" {
		return fmt.Sprintf("%s[%d]", key.ProductID, key.ColorIndex)
	}
	return fmt.Sprintf("%s (%s)", product.Name, variant.Name)
}
