package persist

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mapleforge/channeld/internal/model"
)

// Snapshot is the flat, persistable shape of a model.Player — one row per
// character. Inventories, quest state, skills, and the monster book are
// stored as JSONB columns rather than normalized tables: they are always
// loaded and saved whole (on enter/leave-world, not per-slot), so there is
// no query pattern that benefits from a join.
type Snapshot struct {
	CharacterID int32
	AccountID   int32
	Name        string

	Gender uint8
	Skin   uint8
	Face   uint32
	Hair   uint32

	Job   model.Job
	Level uint8

	MapID int32
	X, Y  int32

	Str, Dex, Int, Luk int16
	HP, MaxHP          int16
	MP, MaxMP          int16
	AP, SP             int16
	Exp                int32
	Fame               int16
	Meso               int32

	Equip     json.RawMessage
	Use       json.RawMessage
	SetupItem json.RawMessage
	Etc       json.RawMessage
	Cash      json.RawMessage
	Quests    json.RawMessage
	Skills    json.RawMessage
	Book      json.RawMessage
}

type SnapshotRepo struct {
	db *DB
}

func NewSnapshotRepo(db *DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// ToSnapshot flattens a live Player into its persistable row, JSON-encoding
// the cell/quest/skill/book collections.
func ToSnapshot(p *model.Player) (*Snapshot, error) {
	s := &Snapshot{
		CharacterID: p.CharacterID,
		AccountID:   p.AccountID,
		Name:        p.Name,
		Gender:      p.Appearance.Gender,
		Skin:        p.Appearance.Skin,
		Face:        p.Appearance.Face,
		Hair:        p.Appearance.Hair,
		Job:         p.Job,
		Level:       p.Level,
		MapID:       p.MapID,
		X:           p.X,
		Y:           p.Y,
		Str:         p.Str,
		Dex:         p.Dex,
		Int:         p.Int,
		Luk:         p.Luk,
		HP:          p.HP,
		MaxHP:       p.MaxHP,
		MP:          p.MP,
		MaxMP:       p.MaxMP,
		AP:          p.AP,
		SP:          p.SP,
		Exp:         p.Exp,
		Fame:        p.Fame,
		Meso:        p.Meso,
	}

	var err error
	if s.Equip, err = json.Marshal(inventoryCells(p.Equip)); err != nil {
		return nil, err
	}
	if s.Use, err = json.Marshal(inventoryCells(p.Use)); err != nil {
		return nil, err
	}
	if s.SetupItem, err = json.Marshal(inventoryCells(p.SetupItem)); err != nil {
		return nil, err
	}
	if s.Etc, err = json.Marshal(inventoryCells(p.Etc)); err != nil {
		return nil, err
	}
	if s.Cash, err = json.Marshal(inventoryCells(p.Cash)); err != nil {
		return nil, err
	}
	if s.Quests, err = json.Marshal(p.Quests); err != nil {
		return nil, err
	}
	if s.Skills, err = json.Marshal(p.Skills.All()); err != nil {
		return nil, err
	}
	if s.Book, err = json.Marshal(p.Book.Entries()); err != nil {
		return nil, err
	}
	return s, nil
}

func inventoryCells(inv *model.Inventory) []model.Cell {
	if inv == nil {
		return nil
	}
	cells := make([]model.Cell, inv.Count())
	for i := range cells {
		cells[i], _ = inv.At(i + 1)
	}
	return cells
}

// FromSnapshot hydrates a fresh model.Player from a persisted row,
// inverting ToSnapshot. Called once on enter-world; the returned Player is
// then owned exclusively by the connection's worker.
func FromSnapshot(s *Snapshot) (*model.Player, error) {
	p := model.NewPlayer()
	p.AccountID = s.AccountID
	p.CharacterID = s.CharacterID
	p.Name = s.Name
	p.Appearance.Gender = s.Gender
	p.Appearance.Skin = s.Skin
	p.Appearance.Face = s.Face
	p.Appearance.Hair = s.Hair
	p.Job = s.Job
	p.Level = s.Level
	p.MapID = s.MapID
	p.X, p.Y = s.X, s.Y
	p.Str, p.Dex, p.Int, p.Luk = s.Str, s.Dex, s.Int, s.Luk
	p.HP, p.MaxHP = s.HP, s.MaxHP
	p.MP, p.MaxMP = s.MP, s.MaxMP
	p.AP, p.SP = s.AP, s.SP
	p.Exp = s.Exp
	p.Fame = s.Fame
	p.Meso = s.Meso

	for _, pair := range []struct {
		raw json.RawMessage
		inv *model.Inventory
	}{
		{s.Equip, p.Equip},
		{s.Use, p.Use},
		{s.SetupItem, p.SetupItem},
		{s.Etc, p.Etc},
		{s.Cash, p.Cash},
	} {
		if err := hydrateInventory(pair.raw, pair.inv); err != nil {
			return nil, err
		}
	}

	if len(s.Quests) > 0 {
		if err := json.Unmarshal(s.Quests, p.Quests); err != nil {
			return nil, err
		}
	}
	if len(s.Skills) > 0 {
		var skills map[int32]model.Skill
		if err := json.Unmarshal(s.Skills, &skills); err != nil {
			return nil, err
		}
		for _, sk := range skills {
			p.Skills.Set(sk)
		}
	}
	if len(s.Book) > 0 {
		var counts map[int32]uint8
		if err := json.Unmarshal(s.Book, &counts); err != nil {
			return nil, err
		}
		for monsterID, count := range counts {
			for i := uint8(0); i < count; i++ {
				p.Book.RecordKill(monsterID)
			}
		}
	}

	for slot, eq := range equippedFromCells(inventoryCells(p.Equip)) {
		if slot < model.EquipSlotCount {
			p.Appearance.Equipped[slot] = eq
		}
	}
	return p, nil
}

func hydrateInventory(raw json.RawMessage, inv *model.Inventory) error {
	if len(raw) == 0 {
		return nil
	}
	var cells []model.Cell
	if err := json.Unmarshal(raw, &cells); err != nil {
		return err
	}
	for i, c := range cells {
		if i >= inv.Count() {
			break
		}
		inv.Set(i+1, c)
	}
	return nil
}

// equippedFromCells maps the equipment inventory's occupied cells onto the
// compact appearance-slot array by cell index, mirroring the convention
// that slot N of the equip inventory holds compact slot N-1.
func equippedFromCells(cells []model.Cell) map[int]*model.Equipment {
	out := make(map[int]*model.Equipment, len(cells))
	for i, c := range cells {
		if c.Equipment != nil {
			out[i] = c.Equipment
		}
	}
	return out
}

// Load reads one character's snapshot by id.
func (r *SnapshotRepo) Load(ctx context.Context, characterID int32) (*Snapshot, error) {
	s := &Snapshot{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT character_id, account_id, name, gender, skin, face, hair,
		        job, level, map_id, x, y,
		        str, dex, int, luk, hp, max_hp, mp, max_mp, ap, sp, exp, fame, meso,
		        equip, use_items, setup_items, etc_items, cash_items, quests, skills, book
		 FROM character_snapshots WHERE character_id = $1`, characterID,
	).Scan(
		&s.CharacterID, &s.AccountID, &s.Name, &s.Gender, &s.Skin, &s.Face, &s.Hair,
		&s.Job, &s.Level, &s.MapID, &s.X, &s.Y,
		&s.Str, &s.Dex, &s.Int, &s.Luk, &s.HP, &s.MaxHP, &s.MP, &s.MaxMP, &s.AP, &s.SP, &s.Exp, &s.Fame, &s.Meso,
		&s.Equip, &s.Use, &s.SetupItem, &s.Etc, &s.Cash, &s.Quests, &s.Skills, &s.Book,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save upserts a character's full snapshot in one statement — called on
// logout, never per-slot.
func (r *SnapshotRepo) Save(ctx context.Context, s *Snapshot) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO character_snapshots (
			character_id, account_id, name, gender, skin, face, hair,
			job, level, map_id, x, y,
			str, dex, int, luk, hp, max_hp, mp, max_mp, ap, sp, exp, fame, meso,
			equip, use_items, setup_items, etc_items, cash_items, quests, skills, book
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,
			$26,$27,$28,$29,$30,$31,$32,$33
		)
		ON CONFLICT (character_id) DO UPDATE SET
			job = EXCLUDED.job, level = EXCLUDED.level, map_id = EXCLUDED.map_id, x = EXCLUDED.x, y = EXCLUDED.y,
			str = EXCLUDED.str, dex = EXCLUDED.dex, int = EXCLUDED.int, luk = EXCLUDED.luk,
			hp = EXCLUDED.hp, max_hp = EXCLUDED.max_hp, mp = EXCLUDED.mp, max_mp = EXCLUDED.max_mp,
			ap = EXCLUDED.ap, sp = EXCLUDED.sp, exp = EXCLUDED.exp, fame = EXCLUDED.fame, meso = EXCLUDED.meso,
			equip = EXCLUDED.equip, use_items = EXCLUDED.use_items, setup_items = EXCLUDED.setup_items,
			etc_items = EXCLUDED.etc_items, cash_items = EXCLUDED.cash_items,
			quests = EXCLUDED.quests, skills = EXCLUDED.skills, book = EXCLUDED.book`,
		s.CharacterID, s.AccountID, s.Name, s.Gender, s.Skin, s.Face, s.Hair,
		s.Job, s.Level, s.MapID, s.X, s.Y,
		s.Str, s.Dex, s.Int, s.Luk, s.HP, s.MaxHP, s.MP, s.MaxMP, s.AP, s.SP, s.Exp, s.Fame, s.Meso,
		s.Equip, s.Use, s.SetupItem, s.Etc, s.Cash, s.Quests, s.Skills, s.Book,
	)
	return err
}

// MaxCharacterID returns the highest persisted character id, used on
// startup to seed the next character-id allocator above all stored values.
func (r *SnapshotRepo) MaxCharacterID(ctx context.Context) (int32, error) {
	var max int32
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(character_id), 0) FROM character_snapshots`,
	).Scan(&max)
	return max, err
}
