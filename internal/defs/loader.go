// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// UpgradeLibrary is a map to hold all upgrade definitions, keyed by their ID.
var UpgradeLibrary map[string]UpgradeDefinition

// enemyOrder keeps enemy definitions in a stable order (by MinWave, then ID)
// so random picks from the spawn pool are deterministic under a seeded PRNG.
var enemyOrder []EnemyDefinition

func init() {
	setEnemyDefinitions(defaultEnemyDefinitions())
	setUpgradeDefinitions(defaultUpgradeDefinitions())
}

func setEnemyDefinitions(list []EnemyDefinition) {
	EnemyLibrary = make(map[string]EnemyDefinition, len(list))
	for _, def := range list {
		EnemyLibrary[def.ID] = def
	}
	enemyOrder = append([]EnemyDefinition(nil), list...)
	sort.Slice(enemyOrder, func(i, j int) bool {
		if enemyOrder[i].MinWave != enemyOrder[j].MinWave {
			return enemyOrder[i].MinWave < enemyOrder[j].MinWave
		}
		return enemyOrder[i].ID < enemyOrder[j].ID
	})
}

func setUpgradeDefinitions(list []UpgradeDefinition) {
	UpgradeLibrary = make(map[string]UpgradeDefinition, len(list))
	for _, def := range list {
		UpgradeLibrary[def.ID] = def
	}
}

// LoadEnemyDefinitions reads the enemy configuration file and replaces the
// built-in EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	setEnemyDefinitions(enemyDefs)
	return nil
}

// LoadUpgradeDefinitions reads the upgrade configuration file and replaces
// the built-in UpgradeLibrary.
func LoadUpgradeDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read upgrade definitions file: %w", err)
	}

	var upgradeDefs []UpgradeDefinition
	if err := json.Unmarshal(file, &upgradeDefs); err != nil {
		return fmt.Errorf("failed to unmarshal upgrade definitions: %w", err)
	}

	setUpgradeDefinitions(upgradeDefs)
	return nil
}
