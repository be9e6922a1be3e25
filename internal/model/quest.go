package model

// MaxQuestTargets is the width of a quest's per-target progress vector.
const MaxQuestTargets = 5

// Progress is a fixed per-quest progress vector — up to 5 targets
// (kill counts, collected items, etc.), index meaning defined by the
// world-data quest table (an external collaborator, §1).
type Progress [MaxQuestTargets]int32

// QuestState holds a player's quest-related sets. Three disjoint sets keyed
// by quest id, plus a companion monster-refcount set (§3). Pure data.
type QuestState struct {
	Active    map[int32]Progress // quest id -> per-target progress
	InfoSlots map[int32]string   // quest id -> opaque script-visible scratch string
	Completed map[int32]uint64   // quest id -> completion FILETIME

	// MonsterRefs accelerates quest-relevance lookup on monster kills:
	// monster id -> number of active quests that care about it.
	MonsterRefs map[int32]int32
}

// NewQuestState returns an empty QuestState.
func NewQuestState() *QuestState {
	return &QuestState{
		Active:      make(map[int32]Progress),
		InfoSlots:   make(map[int32]string),
		Completed:   make(map[int32]uint64),
		MonsterRefs: make(map[int32]int32),
	}
}

// Start begins tracking a quest with a zeroed progress vector, registering
// its monster refs.
func (q *QuestState) Start(questID int32, relevantMonsters []int32) {
	q.Active[questID] = Progress{}
	for _, m := range relevantMonsters {
		q.MonsterRefs[m]++
	}
}

// Complete moves a quest from Active to Completed, decrementing its
// monster refs and dropping its info slot.
func (q *QuestState) Complete(questID int32, completedAt uint64, relevantMonsters []int32) {
	delete(q.Active, questID)
	delete(q.InfoSlots, questID)
	q.Completed[questID] = completedAt
	for _, m := range relevantMonsters {
		if q.MonsterRefs[m] > 0 {
			q.MonsterRefs[m]--
			if q.MonsterRefs[m] == 0 {
				delete(q.MonsterRefs, m)
			}
		}
	}
}

// Forfeit drops a quest from Active without completing it.
func (q *QuestState) Forfeit(questID int32, relevantMonsters []int32) {
	delete(q.Active, questID)
	delete(q.InfoSlots, questID)
	for _, m := range relevantMonsters {
		if q.MonsterRefs[m] > 0 {
			q.MonsterRefs[m]--
			if q.MonsterRefs[m] == 0 {
				delete(q.MonsterRefs, m)
			}
		}
	}
}

// IsRelevant reports whether any active quest cares about monsterID.
func (q *QuestState) IsRelevant(monsterID int32) bool {
	return q.MonsterRefs[monsterID] > 0
}

// MaxMonsterBookCount is the saturating ceiling on a monster book entry's
// kill count.
const MaxMonsterBookCount = 127

// MonsterBook is a set of (monster id -> kill count), saturating at
// MaxMonsterBookCount (§3).
type MonsterBook struct {
	counts map[int32]uint8
}

// NewMonsterBook returns an empty MonsterBook.
func NewMonsterBook() *MonsterBook {
	return &MonsterBook{counts: make(map[int32]uint8)}
}

// RecordKill increments monsterID's kill count, saturating rather than
// overflowing.
func (mb *MonsterBook) RecordKill(monsterID int32) {
	if mb.counts[monsterID] < MaxMonsterBookCount {
		mb.counts[monsterID]++
	}
}

// Count returns the current saturating kill count for monsterID.
func (mb *MonsterBook) Count(monsterID int32) uint8 {
	return mb.counts[monsterID]
}

// Entries returns every (monster id, count) pair with a non-zero count.
func (mb *MonsterBook) Entries() map[int32]uint8 {
	return mb.counts
}

// Skill is a (skill id, level, master level) tuple — the element shape of
// a player's skill map (§3).
type Skill struct {
	SkillID     int32
	Level       int16
	MasterLevel int16
}

// SkillMap is a set of skills keyed by skill id.
type SkillMap struct {
	skills map[int32]Skill
}

// NewSkillMap returns an empty SkillMap.
func NewSkillMap() *SkillMap {
	return &SkillMap{skills: make(map[int32]Skill)}
}

// Set installs or overwrites a skill entry.
func (sm *SkillMap) Set(s Skill) {
	sm.skills[s.SkillID] = s
}

// Get returns the skill entry for skillID, if present.
func (sm *SkillMap) Get(skillID int32) (Skill, bool) {
	s, ok := sm.skills[skillID]
	return s, ok
}

// All returns every skill entry.
func (sm *SkillMap) All() map[int32]Skill {
	return sm.skills
}
