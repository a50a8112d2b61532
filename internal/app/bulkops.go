package app

import (
	"github.com/curioapp/curio/internal/debug"
	"github.com/curioapp/curio/internal/placement"
	"github.com/curioapp/curio/internal/view"
)

// DropAssets is the single drop message: one or more asset ids dropped on a
// folder target. Every drop target routes through HandleDrop; there are no
// per-target handlers.
type DropAssets struct {
	IDs            []string
	TargetFolderID string
}

// Move writes a placement override per id, pointing each asset at the
// target real folder. Smart and system ids are rejected with
// ErrInvalidTarget before anything is written: no partial writes, selection
// untouched. An empty id list is a no-op, not an error. Favorites and
// covers are not affected. A successful move clears the selection only when
// the moved ids came from it; moving an unrelated asset leaves a live
// selection alone.
func (s *Session) Move(ids []string, targetFolderID string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.checkMoveTarget(targetFolderID); err != nil {
		return err
	}
	fromSelection := false
	for _, id := range ids {
		if s.selection.Has(id) {
			fromSelection = true
			break
		}
	}
	for _, id := range ids {
		s.overrides.Set(id, targetFolderID)
	}
	s.persist(s.slices.SaveOverrides(s.overrides))
	if fromSelection {
		s.selection.Clear()
	}
	s.resolve()
	debug.Log(debug.APP, "moved %d assets to %s", len(ids), targetFolderID)
	return nil
}

// checkMoveTarget accepts only live real folder ids.
func (s *Session) checkMoveTarget(targetFolderID string) error {
	id := view.ParseID(targetFolderID)
	if id.Kind() != view.KindPhysical || !s.tree.Contains(id.FolderID()) {
		return ErrInvalidTarget
	}
	return nil
}

// ToggleFavorite flips each id's favorite membership independently. A mixed
// selection may end up partially favorited; that is deliberate, not
// normalized. Empty id list is a no-op.
func (s *Session) ToggleFavorite(ids []string) {
	if len(ids) == 0 {
		return
	}
	for _, id := range ids {
		s.favorites.Toggle(id)
	}
	s.persist(s.slices.SaveFavorites(s.favorites.IDs()))
	s.resolve()
}

// SoftDelete sets each asset's effective folder to trash. While already
// viewing trash it is a no-op for placement but still clears the selection.
// Empty id list is a no-op.
func (s *Session) SoftDelete(ids []string) {
	if len(ids) == 0 {
		return
	}
	if s.selected.IsTrash() {
		s.selection.Clear()
		return
	}
	for _, id := range ids {
		s.overrides.Set(id, placement.Trash)
	}
	s.persist(s.slices.SaveOverrides(s.overrides))
	s.selection.Clear()
	s.resolve()
	debug.Log(debug.APP, "soft-deleted %d assets", len(ids))
}

// Restore moves trashed assets to the target real folder. Valid only while
// viewing trash; ids whose current placement is not trash are skipped (the
// precondition applies per asset). Target validation matches Move.
func (s *Session) Restore(ids []string, targetFolderID string) error {
	if len(ids) == 0 {
		return nil
	}
	if !s.selected.IsTrash() {
		return nil
	}
	if err := s.checkMoveTarget(targetFolderID); err != nil {
		return err
	}
	trashed := make(map[string]bool)
	for _, a := range s.resolution.Members(placement.Trash) {
		trashed[a.ID] = true
	}
	restored := 0
	for _, id := range ids {
		if !trashed[id] {
			continue
		}
		s.overrides.Set(id, targetFolderID)
		restored++
	}
	if restored > 0 {
		s.persist(s.slices.SaveOverrides(s.overrides))
	}
	s.selection.Clear()
	s.resolve()
	debug.Log(debug.APP, "restored %d of %d assets to %s", restored, len(ids), targetFolderID)
	return nil
}

// HandleDrop is the single drop dispatcher. A one-id drop expands through
// the parity rule: dropping a selected asset drags the whole selection,
// dropping an unselected one drags just it.
func (s *Session) HandleDrop(msg DropAssets) error {
	ids := msg.IDs
	if len(ids) == 1 {
		ids = s.selection.TargetIDs(ids[0])
	}
	return s.Move(ids, msg.TargetFolderID)
}

// ActOn expands an acted-on asset id through the parity rule for callers
// wiring click actions (favorite, delete buttons) rather than drops.
func (s *Session) ActOn(assetID string) []string {
	return s.selection.TargetIDs(assetID)
}
