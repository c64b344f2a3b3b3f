package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines an enemy type loaded from enemies.json.
// Stats are the Normal-difficulty baseline; the encounter scales them.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name
	Color       string `json:"color"`       // Hex color used by the terminal renderer
	Health      int    `json:"health"`      // Base hit points
	Damage      int    `json:"damage"`      // Base retaliation damage
	Coins       int    `json:"coins"`       // Base coins dropped on defeat
	Threat      int    `json:"threat"`      // Threat tier, drives the score reward
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// Validate reports the first stat that is out of range.
func (e *EnemyDef) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("enemy %q: missing id", e.Name)
	case e.Health <= 0:
		return fmt.Errorf("enemy %s: health must be positive, got %d", e.ID, e.Health)
	case e.Damage < 0:
		return fmt.Errorf("enemy %s: negative damage %d", e.ID, e.Damage)
	case e.Coins < 0:
		return fmt.Errorf("enemy %s: negative coins %d", e.ID, e.Coins)
	case e.Threat < 0:
		return fmt.Errorf("enemy %s: negative threat %d", e.ID, e.Threat)
	case e.SpawnWeight < 0:
		return fmt.Errorf("enemy %s: negative spawn weight %d", e.ID, e.SpawnWeight)
	}
	return nil
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	if err := validateRows("enemies.json", file.Enemies); err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
