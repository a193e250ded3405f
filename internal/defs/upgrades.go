// internal/defs/upgrades.go
package defs

// UpgradeType distinguishes plain stat modifiers from named effects.
type UpgradeType string

const (
	UpgradeStatModifier UpgradeType = "stat_modifier"
	UpgradeEffect       UpgradeType = "effect"
)

// UpgradeDefinition holds the static data for one upgrade.
// Stat modifiers add to or multiply a (target, stat) pair; effects toggle a
// named behaviour (thorns, ricochet, ...) with a numeric value.
type UpgradeDefinition struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Rarity string      `json:"rarity"`
	Type   UpgradeType `json:"type"`

	// Stat modifier fields. Target "attack" applies to every attack kind,
	// "bullet" only to projectiles.
	Target       string  `json:"target"`
	Stat         string  `json:"stat"`
	Value        float64 `json:"value"`
	IsMultiplier bool    `json:"is_multiplier"`

	// Effect fields.
	Effect      string  `json:"effect"`
	EffectValue float64 `json:"effect_value"`

	Stackable bool `json:"stackable"`
	MaxStacks int  `json:"max_stacks"`
}

func defaultUpgradeDefinitions() []UpgradeDefinition {
	return []UpgradeDefinition{
		{ID: "damage_1", Name: "Devastation", Rarity: "common", Type: UpgradeStatModifier, Target: "attack", Stat: "damage", Value: 0.001, IsMultiplier: true, Stackable: true, MaxStacks: 99999},
		{ID: "damage_3", Name: "Devastation", Rarity: "rare", Type: UpgradeStatModifier, Target: "attack", Stat: "damage", Value: 0.008, IsMultiplier: true, Stackable: true, MaxStacks: 99999},
		{ID: "bullet_damage_1", Name: "Sharper Rounds", Rarity: "common", Type: UpgradeStatModifier, Target: "bullet", Stat: "damage", Value: 1, Stackable: true, MaxStacks: 99999},
		{ID: "bullet_damage_3", Name: "Sharper Rounds", Rarity: "rare", Type: UpgradeStatModifier, Target: "bullet", Stat: "damage", Value: 8, Stackable: true, MaxStacks: 99999},
		{ID: "bullet_pierce_1", Name: "Piercing Shot", Rarity: "rare", Type: UpgradeStatModifier, Target: "bullet", Stat: "pierce", Value: 1, Stackable: true, MaxStacks: 3},
		{ID: "knockback_1", Name: "Knockback Boost", Rarity: "common", Type: UpgradeStatModifier, Target: "attack", Stat: "knockback", Value: 0.05, IsMultiplier: true, Stackable: true, MaxStacks: 5},
		{ID: "knockback_2", Name: "Knockback Boost", Rarity: "uncommon", Type: UpgradeStatModifier, Target: "attack", Stat: "knockback", Value: 0.20, IsMultiplier: true, Stackable: true, MaxStacks: 5},
		{ID: "thorns", Name: "Thorns", Rarity: "epic", Type: UpgradeEffect, Effect: "thorns", EffectValue: 0.1, Stackable: true, MaxStacks: 3},
		{ID: "ricochet", Name: "Ricochet Rounds", Rarity: "epic", Type: UpgradeEffect, Effect: "ricochet", EffectValue: 1, Stackable: true, MaxStacks: 2},
		{ID: "armor", Name: "Hardened Shell", Rarity: "rare", Type: UpgradeEffect, Effect: "armor", EffectValue: 0.025, Stackable: true, MaxStacks: 5},
		{ID: "vampirism_1", Name: "Vampirism", Rarity: "rare", Type: UpgradeEffect, Effect: "lifesteal", EffectValue: 0.02, Stackable: false, MaxStacks: 1},
		{ID: "regeneration", Name: "Auto Repair", Rarity: "epic", Type: UpgradeEffect, Effect: "regen", EffectValue: 1, Stackable: true, MaxStacks: 3},
	}
}
