package data

// Entity template ids. 1xx regular monsters, 5xx bosses, 9xx friendly NPCs.
const (
	TemplateRuinHound    int32 = 101
	TemplateAshWraith    int32 = 102
	TemplateBogStalker   int32 = 103
	TemplateHollowKnight int32 = 104

	TemplateWardenOfEmbers int32 = 501

	TemplateMilitiaGuard int32 = 901
)

// entityDefs is the built-in bestiary. LoadEntityTemplates validates and
// indexes it at startup.
var entityDefs = []EntityTemplate{
	{
		ID: TemplateRuinHound, Name: "Ruin Hound", Kind: KindMonster, Level: 3,
		Power: 6, Vitality: 5, MaxHealth: 60, MaxEnergy: 30,
		Resists: map[DamageType]int32{
			DamageFrost: -20,
		},
		Toolbelt:   []int32{SkillRendingClaws},
		BaseXP:     35, BaseClassPoints: 1,
		Aggressive: true,
	},
	{
		ID: TemplateAshWraith, Name: "Ash Wraith", Kind: KindMonster, Level: 8,
		Power: 10, Vitality: 7, MaxHealth: 110, MaxEnergy: 60,
		Resists: map[DamageType]int32{
			DamageFire:     60,
			DamagePhysical: -25,
		},
		Toolbelt:   []int32{SkillFlameLash, SkillEmberBreath},
		BaseXP:     90, BaseClassPoints: 1,
		Aggressive: true,
	},
	{
		ID: TemplateBogStalker, Name: "Bog Stalker", Kind: KindMonster, Level: 14,
		Power: 14, Vitality: 12, MaxHealth: 190, MaxEnergy: 70,
		Resists: map[DamageType]int32{
			DamageVenom: 75,
			DamageFire:  -30,
		},
		Toolbelt:   []int32{SkillRendingClaws, SkillVenomDart},
		BaseXP:     160, BaseClassPoints: 2,
		Aggressive: true,
	},
	{
		ID: TemplateHollowKnight, Name: "Hollow Knight", Kind: KindMonster, Level: 18,
		Power: 17, Vitality: 16, MaxHealth: 260, MaxEnergy: 80,
		Resists: map[DamageType]int32{
			DamagePhysical: 40,
			DamageShadow:   -35,
			ControlSlow:    30,
		},
		Toolbelt:   []int32{SkillCrushingBlow, SkillHamstring},
		BaseXP:     210, BaseClassPoints: 2,
		Aggressive: true,
	},

	{
		ID: TemplateWardenOfEmbers, Name: "Warden of Embers", Title: "Keeper of the First Flame",
		Kind: KindBoss, Level: 20,
		Power: 24, Vitality: 22, MaxHealth: 900, MaxEnergy: 200,
		Resists: map[DamageType]int32{
			DamageFire:  80,
			DamageFrost: -15,
			ControlSlow: 20,
		},
		HardImmune: []DamageType{ControlStun, ControlFreeze},
		Toolbelt:   []int32{SkillEmberBreath, SkillCrushingBlow, SkillChillingHowl},
		BaseXP:     600, BaseClassPoints: 10,
		Aggressive: true,
	},

	{
		ID: TemplateMilitiaGuard, Name: "Militia Guard", Kind: KindNPC, Level: 10,
		Power: 11, Vitality: 11, MaxHealth: 150, MaxEnergy: 50,
		Toolbelt: []int32{SkillCrushingBlow},
		BaseXP:   5,
	},
}
