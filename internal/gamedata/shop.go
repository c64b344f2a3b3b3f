package gamedata

import "fmt"

// ItemID names a shop item.
type ItemID string

const (
	ItemHealthUpgrade     ItemID = "health_upgrade"
	ItemDamageUpgrade     ItemID = "damage_upgrade"
	ItemPotionSizeUpgrade ItemID = "potion_size_upgrade"
	ItemPotion            ItemID = "potion"
)

// ItemDef defines a shop item: its base price and the stats it grants.
type ItemDef struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int    `json:"basePrice"` // Normal-difficulty price
	MaxHealth   int    `json:"maxHealth"` // also heals by the same amount
	Damage      int    `json:"damage"`
	PotionSize  int    `json:"potionSize"`
	Potions     int    `json:"potions"`
}

// Validate checks the item row. Items only ever add to stats.
func (d *ItemDef) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("item %q: missing id", d.Name)
	}
	if d.BasePrice <= 0 {
		return fmt.Errorf("item %s: price must be positive, got %d", d.ID, d.BasePrice)
	}
	if d.MaxHealth < 0 || d.Damage < 0 || d.PotionSize < 0 || d.Potions < 0 {
		return fmt.Errorf("item %s: stat increments must not be negative", d.ID)
	}
	return nil
}

// ShopFile represents the structure of shop.json.
type ShopFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads the shop catalog from shop.json.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ShopFile]("shop.json")
	if err != nil {
		return nil, err
	}
	if err := validateRows("shop.json", file.Items); err != nil {
		return nil, err
	}
	return file.Items, nil
}
