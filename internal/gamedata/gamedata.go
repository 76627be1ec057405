// Package gamedata loads the static game definitions (items, spells,
// facilities) from TOML files and serves them to the rest of the game.
// Definitions carry message IDs, not display text; translation happens
// at the UI edge.
package gamedata

// Category classifies an item for shop menus.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryConsumable Category = "consumable"
	CategoryMisc       Category = "misc"
)

// School is the tradition a spell belongs to.
type School string

const (
	SchoolMage   School = "mage"
	SchoolPriest School = "priest"
)

// MaxSpellLevel is the highest spell circle.
const MaxSpellLevel = 7

// Item is one purchasable piece of equipment or supplies.
type Item struct {
	ID       string   `toml:"id"`
	NameKey  string   `toml:"name_key"`
	Category Category `toml:"category"`
	Price    int      `toml:"price"`
}

// Spell is one castable spell. Price is the learning fee at the magic
// guild.
type Spell struct {
	ID      string `toml:"id"`
	NameKey string `toml:"name_key"`
	School  School `toml:"school"`
	Level   int    `toml:"level"`
	MPCost  int    `toml:"mp_cost"`
	Price   int    `toml:"price"`
}

// Facility describes one town facility. Services maps a service name to
// its price in gold, e.g. "rest" for the inn.
type Facility struct {
	ID          string         `toml:"id"`
	NameKey     string         `toml:"name_key"`
	GreetingKey string         `toml:"greeting_key"`
	Services    map[string]int `toml:"services"`
}

// Store holds the loaded definitions. Slices keep file order so menus
// are stable; maps serve lookups.
type Store struct {
	items      []Item
	itemsByID  map[string]Item
	spells     []Spell
	spellsByID map[string]Spell
	facilities []Facility
	facsByID   map[string]Facility
}

// Items returns every item in file order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item looks up an item by ID.
func (s *Store) Item(id string) (Item, bool) {
	it, ok := s.itemsByID[id]
	return it, ok
}

// ItemsByCategory returns the items of one category in file order.
func (s *Store) ItemsByCategory(c Category) []Item {
	var out []Item
	for _, it := range s.items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// Spells returns every spell in file order.
func (s *Store) Spells() []Spell {
	out := make([]Spell, len(s.spells))
	copy(out, s.spells)
	return out
}

// Spell looks up a spell by ID.
func (s *Store) Spell(id string) (Spell, bool) {
	sp, ok := s.spellsByID[id]
	return sp, ok
}

// SpellsFor returns the spells of one school up to maxLevel, in file
// order. The magic guild uses it to list what a member may learn.
func (s *Store) SpellsFor(school School, maxLevel int) []Spell {
	var out []Spell
	for _, sp := range s.spells {
		if sp.School == school && sp.Level <= maxLevel {
			out = append(out, sp)
		}
	}
	return out
}

// Facilities returns every facility in file order.
func (s *Store) Facilities() []Facility {
	out := make([]Facility, len(s.facilities))
	copy(out, s.facilities)
	return out
}

// Facility looks up a facility by ID.
func (s *Store) Facility(id string) (Facility, bool) {
	f, ok := s.facsByID[id]
	return f, ok
}

// ServicePrice returns the price of a facility service, e.g.
// ServicePrice("inn", "rest"). ok is false if either is unknown.
func (s *Store) ServicePrice(facilityID, service string) (int, bool) {
	f, ok := s.facsByID[facilityID]
	if !ok {
		return 0, false
	}
	price, ok := f.Services[service]
	return price, ok
}
