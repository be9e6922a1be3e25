package model

// Job identifies a character's job/class. Job ids encode their place in the
// job tree: the thousands digit is the job branch (Explorer/Cygnus/Legend),
// the hundreds digit the base job, and the tens digit the advancement tier.
type Job int32

const (
	JobBeginner Job = 0

	JobSwordsman Job = 100
	JobFighter   Job = 110
	JobCrusader  Job = 111
	JobHero      Job = 112

	JobPage        Job = 120
	JobWhiteKnight Job = 121
	JobPaladin     Job = 122

	JobSpearman   Job = 130
	JobBerserker  Job = 131
	JobDarkKnight Job = 132

	JobMagician Job = 200

	JobFireWizard  Job = 210
	JobFireMage    Job = 211
	JobFireArchMage Job = 212

	JobIceWizard  Job = 220
	JobIceMage    Job = 221
	JobIceArchMage Job = 222

	JobCleric Job = 230
	JobPriest Job = 231
	JobBishop Job = 232

	JobArcher Job = 300

	JobHunter   Job = 310
	JobRanger   Job = 311
	JobBowMaster Job = 312

	JobCrossbowman Job = 320
	JobSniper      Job = 321
	JobMarksman    Job = 322

	JobRogue Job = 400

	JobAssassin  Job = 410
	JobHermit    Job = 411
	JobNightLord Job = 412

	JobBandit      Job = 420
	JobChiefBandit Job = 421
	JobShadower    Job = 422

	JobPirate Job = 500

	JobBrawler   Job = 510
	JobMarauder  Job = 511
	JobBuccaneer Job = 512

	JobGunslinger Job = 520
	JobOutlaw     Job = 521
	JobCorsair    Job = 522

	JobGM      Job = 900
	JobSuperGM Job = 910

	JobNoblesse Job = 1000

	JobDawnWarrior1 Job = 1110
	JobDawnWarrior2 Job = 1111
	JobDawnWarrior3 Job = 1112

	JobBlazeWizard1 Job = 1210
	JobBlazeWizard2 Job = 1211
	JobBlazeWizard3 Job = 1212

	JobWindArcher1 Job = 1310
	JobWindArcher2 Job = 1311
	JobWindArcher3 Job = 1312

	JobNightWalker1 Job = 1410
	JobNightWalker2 Job = 1411
	JobNightWalker3 Job = 1412

	JobThunderBreaker1 Job = 1510
	JobThunderBreaker2 Job = 1511
	JobThunderBreaker3 Job = 1512

	JobLegend Job = 2000
	JobEvan   Job = 2001

	JobAran1 Job = 2110
	JobAran2 Job = 2111
	JobAran3 Job = 2112

	JobEvan1  Job = 2200
	JobEvan2  Job = 2210
	JobEvan3  Job = 2211
	JobEvan4  Job = 2212
	JobEvan5  Job = 2213
	JobEvan6  Job = 2214
	JobEvan7  Job = 2215
	JobEvan8  Job = 2216
	JobEvan9  Job = 2217
	JobEvan10 Job = 2218
)

// JobType classifies a job id into its top-level branch.
type JobType int32

const (
	JobTypeExplorer JobType = 0
	JobTypeCygnus   JobType = 1
	JobTypeLegend   JobType = 2
)

// Type returns which top-level job branch j belongs to.
func (j Job) Type() JobType {
	return JobType(j / 1000)
}

// IsA reports whether j is base or a later advancement of base, within the
// same tens-tier family (or, for a round-hundred base like JobSwordsman,
// anywhere under that hundred).
func (j Job) IsA(base Job) bool {
	if j/10 == base/10 && j >= base {
		return true
	}
	if (base/10)%10 == 0 && j/100 == base/100 {
		return true
	}
	return false
}
