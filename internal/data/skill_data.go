package data

// Skill id ranges, grouped by role so catalog diffs stay readable:
// 1xx damage, 2xx defense, 3xx support, 4xx ultimates, 9xx creature-only.
const (
	SkillCrushingBlow int32 = 101
	SkillFlameLash    int32 = 102
	SkillFrostSpike   int32 = 103
	SkillVenomDart    int32 = 104
	SkillShadowBolt   int32 = 105
	SkillHamstring    int32 = 106

	SkillBulwark  int32 = 201
	SkillIronSkin int32 = 202

	SkillMendingTouch int32 = 301
	SkillRegrowth     int32 = 302
	SkillPurify       int32 = 303
	SkillBattleHymn   int32 = 304

	SkillCataclysm   int32 = 401
	SkillAegisOfDawn int32 = 402
	SkillMiracle     int32 = 403

	SkillRendingClaws int32 = 901
	SkillEmberBreath  int32 = 902
	SkillChillingHowl int32 = 903
)

// skillDefs is the built-in skill catalog. LoadSkills validates and indexes
// it at startup; nothing reads this slice directly afterwards.
var skillDefs = []SkillTemplate{
	{
		ID: SkillCrushingBlow, Name: "Crushing Blow",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamagePhysical,
		BaseMin: 8, BaseMax: 14, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 12, CritPct: 12,
		Effects: []SkillEffect{
			{Kind: EffectStun, ChancePct: 20, DurationRounds: 1},
		},
	},
	{
		ID: SkillFlameLash, Name: "Flame Lash",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamageFire,
		BaseMin: 10, BaseMax: 16, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 14, CritPct: 8,
		Effects: []SkillEffect{
			{Kind: EffectBurn, ChancePct: 60, DurationRounds: 3, Magnitude: 4},
		},
	},
	{
		ID: SkillFrostSpike, Name: "Frost Spike",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamageFrost,
		BaseMin: 9, BaseMax: 15, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 14, CritPct: 8,
		Effects: []SkillEffect{
			{Kind: EffectFreeze, ChancePct: 15, DurationRounds: 1},
			{Kind: EffectSlow, ChancePct: 40, DurationRounds: 2, Magnitude: 20},
		},
	},
	{
		ID: SkillVenomDart, Name: "Venom Dart",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamageVenom,
		BaseMin: 6, BaseMax: 11, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 10, CritPct: 8,
		Effects: []SkillEffect{
			{Kind: EffectPoison, ChancePct: 75, DurationRounds: 4, Magnitude: 3},
		},
	},
	{
		ID: SkillShadowBolt, Name: "Shadow Bolt",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamageShadow,
		BaseMin: 11, BaseMax: 18, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 16, CritPct: 8,
		Effects: []SkillEffect{
			{Kind: EffectWeaken, ChancePct: 35, DurationRounds: 2, Magnitude: 15},
		},
	},
	{
		ID: SkillHamstring, Name: "Hamstring",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamagePhysical,
		BaseMin: 7, BaseMax: 12, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 11, CritPct: 12,
		Effects: []SkillEffect{
			{Kind: EffectBleed, ChancePct: 50, DurationRounds: 3, Magnitude: 3},
			{Kind: EffectSlow, ChancePct: 30, DurationRounds: 2, Magnitude: 15},
		},
	},

	{
		ID: SkillBulwark, Name: "Bulwark",
		Type: SkillDefense, Application: ApplyMitigation, DamageType: DamagePhysical,
		BaseMin: 10, BaseMax: 14, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 12,
	},
	{
		ID: SkillIronSkin, Name: "Iron Skin",
		Type: SkillDefense, Application: ApplyMitigation, DamageType: DamagePhysical,
		BaseMin: 4, BaseMax: 6, ScalePerLevel: 1,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 10,
		Effects: []SkillEffect{
			{Kind: EffectFortify, ChancePct: 100, DurationRounds: 3, Magnitude: 3},
		},
	},

	{
		ID: SkillMendingTouch, Name: "Mending Touch",
		Type: SkillSupport, Application: ApplyHeal, DamageType: DamagePhysical,
		BaseMin: 12, BaseMax: 18, ScalePerLevel: 2,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 14,
	},
	{
		ID: SkillRegrowth, Name: "Regrowth",
		Type: SkillSupport, Application: ApplyHeal, DamageType: DamagePhysical,
		BaseMin: 5, BaseMax: 8, ScalePerLevel: 1,
		MaxRank: 10, RankBonusPct: 5,
		EnergyCost: 12,
		Effects: []SkillEffect{
			{Kind: EffectRegrowth, ChancePct: 100, DurationRounds: 4, Magnitude: 4},
		},
	},
	{
		ID: SkillPurify, Name: "Purify",
		Type: SkillSupport, Application: ApplyHeal, DamageType: DamagePhysical,
		BaseMin: 0, BaseMax: 0,
		MaxRank: 5, RankBonusPct: 0,
		EnergyCost: 10,
		Cures: 2,
	},
	{
		ID: SkillBattleHymn, Name: "Battle Hymn",
		Type: SkillSupport, Application: ApplyHeal, DamageType: DamagePhysical,
		BaseMin: 0, BaseMax: 0,
		MaxRank: 5, RankBonusPct: 0,
		EnergyCost: 15,
		Effects: []SkillEffect{
			{Kind: EffectFortify, ChancePct: 100, DurationRounds: 3, Magnitude: 2},
		},
	},

	{
		ID: SkillCataclysm, Name: "Cataclysm",
		Type: SkillUltimate, Application: ApplyDamage, DamageType: DamageFire,
		BaseMin: 30, BaseMax: 45, ScalePerLevel: 4,
		MaxRank: 5, RankBonusPct: 8,
		EnergyCost: 50, CritPct: 15,
		Effects: []SkillEffect{
			{Kind: EffectBurn, ChancePct: 100, DurationRounds: 3, Magnitude: 8},
		},
	},
	{
		ID: SkillAegisOfDawn, Name: "Aegis of Dawn",
		Type: SkillUltimate, Application: ApplyMitigation, DamageType: DamagePhysical,
		BaseMin: 25, BaseMax: 35, ScalePerLevel: 3,
		MaxRank: 5, RankBonusPct: 8,
		EnergyCost: 45,
		Effects: []SkillEffect{
			{Kind: EffectFortify, ChancePct: 100, DurationRounds: 4, Magnitude: 6},
		},
	},
	{
		ID: SkillMiracle, Name: "Miracle",
		Type: SkillUltimate, Application: ApplyHeal, DamageType: DamagePhysical,
		BaseMin: 35, BaseMax: 50, ScalePerLevel: 4,
		MaxRank: 5, RankBonusPct: 8,
		EnergyCost: 55,
		Cures: 99,
		Effects: []SkillEffect{
			{Kind: EffectRegrowth, ChancePct: 100, DurationRounds: 3, Magnitude: 8},
		},
	},

	{
		ID: SkillRendingClaws, Name: "Rending Claws",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamagePhysical,
		BaseMin: 6, BaseMax: 12, ScalePerLevel: 2,
		EnergyCost: 8, CritPct: 10,
		Effects: []SkillEffect{
			{Kind: EffectBleed, ChancePct: 40, DurationRounds: 3, Magnitude: 2},
		},
	},
	{
		ID: SkillEmberBreath, Name: "Ember Breath",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamageFire,
		BaseMin: 14, BaseMax: 22, ScalePerLevel: 3,
		EnergyCost: 20, CritPct: 10,
		Effects: []SkillEffect{
			{Kind: EffectBurn, ChancePct: 80, DurationRounds: 2, Magnitude: 6},
		},
	},
	{
		ID: SkillChillingHowl, Name: "Chilling Howl",
		Type: SkillDamage, Application: ApplyDamage, DamageType: DamageFrost,
		BaseMin: 8, BaseMax: 13, ScalePerLevel: 2,
		EnergyCost: 12, CritPct: 8,
		Effects: []SkillEffect{
			{Kind: EffectSlow, ChancePct: 60, DurationRounds: 2, Magnitude: 25},
		},
	},
}
