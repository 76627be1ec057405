package gamedata

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Definition file names under the data directory.
const (
	itemsFile      = "items.toml"
	spellsFile     = "spells.toml"
	facilitiesFile = "facilities.toml"
)

// Load reads and validates the definition files under dir. All three
// files must exist; the game is not playable with a partial data set.
func Load(dir string) (*Store, error) {
	s := &Store{
		itemsByID:  make(map[string]Item),
		spellsByID: make(map[string]Spell),
		facsByID:   make(map[string]Facility),
	}

	var itemDoc struct {
		Items []Item `toml:"item"`
	}
	if _, err := toml.DecodeFile(filepath.Join(dir, itemsFile), &itemDoc); err != nil {
		return nil, fmt.Errorf("gamedata: %s: %w", itemsFile, err)
	}
	for _, it := range itemDoc.Items {
		if err := s.addItem(it); err != nil {
			return nil, fmt.Errorf("gamedata: %s: %w", itemsFile, err)
		}
	}

	var spellDoc struct {
		Spells []Spell `toml:"spell"`
	}
	if _, err := toml.DecodeFile(filepath.Join(dir, spellsFile), &spellDoc); err != nil {
		return nil, fmt.Errorf("gamedata: %s: %w", spellsFile, err)
	}
	for _, sp := range spellDoc.Spells {
		if err := s.addSpell(sp); err != nil {
			return nil, fmt.Errorf("gamedata: %s: %w", spellsFile, err)
		}
	}

	var facDoc struct {
		Facilities []Facility `toml:"facility"`
	}
	if _, err := toml.DecodeFile(filepath.Join(dir, facilitiesFile), &facDoc); err != nil {
		return nil, fmt.Errorf("gamedata: %s: %w", facilitiesFile, err)
	}
	for _, f := range facDoc.Facilities {
		if err := s.addFacility(f); err != nil {
			return nil, fmt.Errorf("gamedata: %s: %w", facilitiesFile, err)
		}
	}

	return s, nil
}

func (s *Store) addItem(it Item) error {
	if it.ID == "" {
		return fmt.Errorf("item with empty id")
	}
	if _, dup := s.itemsByID[it.ID]; dup {
		return fmt.Errorf("duplicate item id %q", it.ID)
	}
	if it.NameKey == "" {
		return fmt.Errorf("item %q: missing name_key", it.ID)
	}
	switch it.Category {
	case CategoryWeapon, CategoryArmor, CategoryConsumable, CategoryMisc:
	default:
		return fmt.Errorf("item %q: unknown category %q", it.ID, it.Category)
	}
	if it.Price < 0 {
		return fmt.Errorf("item %q: negative price %d", it.ID, it.Price)
	}
	s.items = append(s.items, it)
	s.itemsByID[it.ID] = it
	return nil
}

func (s *Store) addSpell(sp Spell) error {
	if sp.ID == "" {
		return fmt.Errorf("spell with empty id")
	}
	if _, dup := s.spellsByID[sp.ID]; dup {
		return fmt.Errorf("duplicate spell id %q", sp.ID)
	}
	if sp.NameKey == "" {
		return fmt.Errorf("spell %q: missing name_key", sp.ID)
	}
	switch sp.School {
	case SchoolMage, SchoolPriest:
	default:
		return fmt.Errorf("spell %q: unknown school %q", sp.ID, sp.School)
	}
	if sp.Level < 1 || sp.Level > MaxSpellLevel {
		return fmt.Errorf("spell %q: level %d out of range 1..%d", sp.ID, sp.Level, MaxSpellLevel)
	}
	if sp.MPCost < 0 {
		return fmt.Errorf("spell %q: negative mp_cost %d", sp.ID, sp.MPCost)
	}
	if sp.Price < 0 {
		return fmt.Errorf("spell %q: negative price %d", sp.ID, sp.Price)
	}
	s.spells = append(s.spells, sp)
	s.spellsByID[sp.ID] = sp
	return nil
}

func (s *Store) addFacility(f Facility) error {
	if f.ID == "" {
		return fmt.Errorf("facility with empty id")
	}
	if _, dup := s.facsByID[f.ID]; dup {
		return fmt.Errorf("duplicate facility id %q", f.ID)
	}
	if f.NameKey == "" {
		return fmt.Errorf("facility %q: missing name_key", f.ID)
	}
	for service, price := range f.Services {
		if price < 0 {
			return fmt.Errorf("facility %q: service %q has negative price %d", f.ID, service, price)
		}
	}
	s.facilities = append(s.facilities, f)
	s.facsByID[f.ID] = f
	return nil
}
