package persist

import (
	"context"
	"fmt"
)

// EffectEntry records one script-driven effect on a character — a
// GrantMeso/GrantItem/StartQuest/CompleteQuest/Warp/ChangeJob/AwardExp call made through
// internal/bridge's ClientOps — so a script bug that grants the wrong
// amount can be traced back to the script and entry point that caused it.
type EffectEntry struct {
	CharacterID int32
	ScriptName  string
	Kind        string // "meso", "item", "quest_start", "quest_complete", "warp", "job_change", "exp"
	ItemID      int32
	Quantity    int32
}

type EffectLogRepo struct {
	db *DB
}

func NewEffectLogRepo(db *DB) *EffectLogRepo {
	return &EffectLogRepo{db: db}
}

// WriteBatch atomically records a batch of effect entries in a single
// transaction, applied once per script Run() rather than per-call.
func (r *EffectLogRepo) WriteBatch(ctx context.Context, entries []EffectEntry) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("effect log begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO script_effect_log (character_id, script_name, kind, item_id, quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			e.CharacterID, e.ScriptName, e.Kind, e.ItemID, e.Quantity,
		); err != nil {
			return fmt.Errorf("effect log insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}
