package packet

import "github.com/mapleforge/channeld/internal/wire"

// MaxHitCount and MaxMonsterCount are the nibble-packed caps: the header
// byte is (monsterCount<<4) | hitCount, so both saturate at 15 (§8
// boundary behavior).
const (
	MaxHitCount     = 15
	MaxMonsterCount = 15
)

func clampNibble(n int) uint8 {
	if n > 15 {
		return 15
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}

// MonsterHit is one monster's damage record within an attack packet: its
// object id and the per-hit damage values.
type MonsterHit struct {
	ObjectID int32
	Damages  []int32
}

// CloseRangeAttackMaxLen bounds a close-range attack with the maximum
// monster and hit counts.
const CloseRangeAttackMaxLen = 2 + 1 + 1 + MaxMonsterCount*(4+1+MaxHitCount*4)

// CloseRangeAttack encodes a melee attack. skill is written as a single
// byte — narrower than RangedAttack's skill field, preserved rather than
// normalized (§9).
func CloseRangeAttack(w *wire.Writer, skill uint8, hits []MonsterHit) int {
	hitCount := 0
	if len(hits) > 0 {
		hitCount = len(hits[0].Damages)
	}
	w.Opcode(OpCloseRangeAttack)
	w.U8(clampNibble(len(hits))<<4 | clampNibble(hitCount))
	w.U8(skill)
	for _, h := range hits {
		w.I32(h.ObjectID)
		w.U8(0) // stance
		for _, d := range h.Damages {
			w.I32(d)
		}
	}
	return w.Len()
}

// RangedAttackMaxLen bounds a ranged attack with the maximum monster and
// hit counts.
const RangedAttackMaxLen = 2 + 1 + 4 + 4 + MaxMonsterCount*(4+1+MaxHitCount*4) + 4

// RangedAttack encodes a ranged attack. skill is a full u32 here — wider
// than CloseRangeAttack's skill field, preserved rather than normalized
// (§9). Carries an additional projectile id and a trailing u32 zero that
// close-range attacks do not.
func RangedAttack(w *wire.Writer, skill uint32, projectileID int32, hits []MonsterHit) int {
	hitCount := 0
	if len(hits) > 0 {
		hitCount = len(hits[0].Damages)
	}
	w.Opcode(OpRangedAttack)
	w.U8(clampNibble(len(hits))<<4 | clampNibble(hitCount))
	w.U32(skill)
	w.I32(projectileID)
	for _, h := range hits {
		w.I32(h.ObjectID)
		w.U8(0)
		for _, d := range h.Damages {
			w.I32(d)
		}
	}
	w.U32(0)
	return w.Len()
}
