package gamedata

import (
	"errors"
)

// Roller is the random source used for every draw in the game.
// *rand.Rand satisfies it; tests pass a seeded one.
type Roller interface {
	Intn(n int) int
}

// EnemyRegistry holds loaded enemy definitions and picks encounters.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects an enemy definition by spawn weight.
// Returns nil only for an empty or zero-weight registry.
func (r *EnemyRegistry) SpawnRandom(rng Roller) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// CanSpawn reports whether SpawnRandom can ever return an enemy.
func (r *EnemyRegistry) CanSpawn() bool {
	return r != nil && r.totalWeight > 0 && len(r.enemies) > 0
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// ItemCatalog
// =============================================================================

// ItemCatalog holds the shop items in display order.
type ItemCatalog struct {
	items map[ItemID]*ItemDef
	all   []ItemDef
}

// NewItemCatalog creates a catalog from loaded item definitions.
func NewItemCatalog(items []ItemDef) *ItemCatalog {
	catalog := &ItemCatalog{
		items: make(map[ItemID]*ItemDef, len(items)),
		all:   items,
	}
	for i := range items {
		catalog.items[items[i].ID] = &items[i]
	}
	return catalog
}

// LoadItemCatalog loads and creates a catalog from the embedded shop.json.
func LoadItemCatalog() (*ItemCatalog, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from shop.json")
	}
	return NewItemCatalog(items), nil
}

// MustLoadItemCatalog loads a catalog, panicking on error.
func MustLoadItemCatalog() *ItemCatalog {
	catalog, err := LoadItemCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// GetByID returns the item with the given ID, or nil if not sold here.
func (c *ItemCatalog) GetByID(id ItemID) *ItemDef {
	return c.items[id]
}

// All returns all items in display order.
func (c *ItemCatalog) All() []ItemDef {
	return c.all
}

// Count returns the number of items in the catalog.
func (c *ItemCatalog) Count() int {
	return len(c.all)
}
