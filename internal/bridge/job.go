package bridge

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/mapleforge/channeld/internal/model"
)

// OpenJob installs the Job global: a pure table of job-id constants, so
// scripts can write Job.Swordsman, Job.Crusader, and so on — a direct
// Lua rendering of the job tree (§3a) rather than a callable namespace.
func OpenJob(L *lua.LState) {
	t := L.NewTable()
	for name, id := range jobConstants {
		t.RawSetString(name, lua.LNumber(id))
	}
	L.SetGlobal("Job", t)
}

var jobConstants = map[string]model.Job{
	"Beginner": model.JobBeginner,

	"Swordsman": model.JobSwordsman,
	"Fighter":   model.JobFighter,
	"Crusader":  model.JobCrusader,
	"Hero":      model.JobHero,
	"Page":      model.JobPage,
	"Spearman":  model.JobSpearman,

	"Magician":  model.JobMagician,
	"FireWizard": model.JobFireWizard,
	"IceWizard":  model.JobIceWizard,
	"Cleric":     model.JobCleric,
	"Priest":     model.JobPriest,
	"Bishop":     model.JobBishop,

	"Archer":      model.JobArcher,
	"Hunter":      model.JobHunter,
	"Crossbowman": model.JobCrossbowman,

	"Rogue":   model.JobRogue,
	"Assassin": model.JobAssassin,
	"Bandit":   model.JobBandit,

	"Pirate":     model.JobPirate,
	"Brawler":    model.JobBrawler,
	"Gunslinger": model.JobGunslinger,

	"GM":      model.JobGM,
	"SuperGM": model.JobSuperGM,

	"Noblesse": model.JobNoblesse,
	"Legend":   model.JobLegend,
	"Evan":     model.JobEvan,
}
