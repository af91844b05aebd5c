package audit

import (
	"gorm.io/gorm"

	entity "ativos.GO/model/entity"
	historyRepo "ativos.GO/model/repository/history"
)

// Recorder appends immutable history entries for asset changes.
// Inventory workflow operations intentionally do not go through here;
// only asset, attachment and maintenance mutations are audited.
type Recorder struct {
	history *historyRepo.HistoryRepository
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{history: historyRepo.NewHistoryRepository(db)}
}

// Entry describes one audited change. Field/OldValue/NewValue are
// optional; Actor defaults to "system" when empty.
type Entry struct {
	AssetID  uint
	Action   string
	Field    string
	OldValue string
	NewValue string
	Actor    string
	SourceIP string
}

func (r *Recorder) Record(e Entry) error {
	h := &entity.HistoryEntry{
		AssetID:  e.AssetID,
		Action:   e.Action,
		Actor:    e.Actor,
		SourceIP: e.SourceIP,
	}
	if h.Actor == "" {
		h.Actor = "system"
	}
	if e.Field != "" {
		h.Field = &e.Field
	}
	if e.OldValue != "" {
		h.OldValue = &e.OldValue
	}
	if e.NewValue != "" {
		h.NewValue = &e.NewValue
	}
	return r.history.Append(h)
}

// History returns up to limit entries for an asset, newest first.
func (r *Recorder) History(assetID uint, limit int) ([]entity.HistoryEntry, error) {
	return r.history.ListByAsset(assetID, limit)
}
