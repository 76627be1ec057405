// Package party models the adventuring party, its members, and the
// guild roster they are drawn from.
package party

import (
	"errors"

	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
)

// Sentinel errors for membership changes.
var (
	// ErrPartyFull indicates the party already has MaxMembers members.
	ErrPartyFull = errors.New("party is full")

	// ErrAlreadyMember indicates the character is already in the party.
	ErrAlreadyMember = errors.New("character is already in the party")

	// ErrNameTaken indicates the roster already has a character with
	// that name.
	ErrNameTaken = errors.New("name is already taken")
)

// MaxMembers is the party size limit.
const MaxMembers = 6

// Class is a character's profession.
type Class string

const (
	ClassFighter Class = "fighter"
	ClassMage    Class = "mage"
	ClassPriest  Class = "priest"
	ClassThief   Class = "thief"
)

// Classes lists every playable class in presentation order.
func Classes() []Class {
	return []Class{ClassFighter, ClassMage, ClassPriest, ClassThief}
}

// CanCast reports whether the class learns spells of the given school.
func (c Class) CanCast(school gamedata.School) bool {
	switch c {
	case ClassMage:
		return school == gamedata.SchoolMage
	case ClassPriest:
		return school == gamedata.SchoolPriest
	}
	return false
}

// Caster reports whether the class learns spells at all.
func (c Class) Caster() bool {
	return c == ClassMage || c == ClassPriest
}

// Status is a character's condition.
type Status string

const (
	StatusOK    Status = "ok"
	StatusDead  Status = "dead"
	StatusAshes Status = "ashes"
)

// Character is one adventurer. Fresh characters start at level 1 with
// fixed base stats per class, so town flows stay deterministic.
type Character struct {
	Name   string
	Class  Class
	Level  int
	HP     int
	MaxHP  int
	MP     int
	MaxMP  int
	Status Status
	Spells []string // spell IDs, in learning order
}

// NewCharacter creates a level 1 adventurer of the given class.
func NewCharacter(name string, class Class) *Character {
	c := &Character{Name: name, Class: class, Level: 1, Status: StatusOK}
	switch class {
	case ClassFighter:
		c.MaxHP = 12
	case ClassThief:
		c.MaxHP = 8
	case ClassMage:
		c.MaxHP = 6
		c.MaxMP = 6
	case ClassPriest:
		c.MaxHP = 9
		c.MaxMP = 4
	default:
		c.MaxHP = 8
	}
	c.HP = c.MaxHP
	c.MP = c.MaxMP
	return c
}

// Alive reports whether the character can act.
func (c *Character) Alive() bool { return c.Status == StatusOK }

// Injured reports whether the character is alive but below full HP.
func (c *Character) Injured() bool { return c.Alive() && c.HP < c.MaxHP }

// KnowsSpell reports whether the character has learned the spell.
func (c *Character) KnowsSpell(id string) bool {
	for _, s := range c.Spells {
		if s == id {
			return true
		}
	}
	return false
}

// LearnSpell records the spell. Learning twice is a no-op.
func (c *Character) LearnSpell(id string) {
	if c.KnowsSpell(id) {
		return
	}
	c.Spells = append(c.Spells, id)
}

// RestoreAll brings HP and MP back to their maximums. Status is not
// touched; the dead rest elsewhere.
func (c *Character) RestoreAll() {
	c.HP = c.MaxHP
	c.MP = c.MaxMP
}

// Party is the active adventuring group with its pooled gold and
// inventory.
type Party struct {
	members   []*Character
	gold      int
	inventory []string // item IDs
}

// New creates an empty party holding the given gold.
func New(gold int) *Party {
	return &Party{gold: gold}
}

// Gold returns the pooled gold.
func (p *Party) Gold() int { return p.gold }

// Spend deducts amount and reports whether the party could afford it.
// Nothing is deducted on false.
func (p *Party) Spend(amount int) bool {
	if amount < 0 || amount > p.gold {
		return false
	}
	p.gold -= amount
	return true
}

// Earn adds amount to the pooled gold.
func (p *Party) Earn(amount int) {
	if amount > 0 {
		p.gold += amount
	}
}

// Members returns the party in marching order.
func (p *Party) Members() []*Character {
	out := make([]*Character, len(p.members))
	copy(out, p.members)
	return out
}

// Size returns the member count.
func (p *Party) Size() int { return len(p.members) }

// Contains reports whether the character is in the party.
func (p *Party) Contains(c *Character) bool {
	for _, m := range p.members {
		if m == c {
			return true
		}
	}
	return false
}

// Add appends a character to the party.
func (p *Party) Add(c *Character) error {
	if len(p.members) >= MaxMembers {
		return ErrPartyFull
	}
	if p.Contains(c) {
		return ErrAlreadyMember
	}
	p.members = append(p.members, c)
	return nil
}

// Alive returns the members that can act.
func (p *Party) Alive() []*Character { return p.filter((*Character).Alive) }

// Injured returns the members that are alive but below full HP.
func (p *Party) Injured() []*Character { return p.filter((*Character).Injured) }

// Dead returns the members waiting for a resurrection.
func (p *Party) Dead() []*Character {
	return p.filter(func(c *Character) bool { return c.Status == StatusDead })
}

func (p *Party) filter(keep func(*Character) bool) []*Character {
	var out []*Character
	for _, m := range p.members {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// Items returns the pooled inventory in acquisition order.
func (p *Party) Items() []string {
	out := make([]string, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// AddItem appends an item to the pooled inventory.
func (p *Party) AddItem(id string) {
	p.inventory = append(p.inventory, id)
}

// RemoveItem removes the first occurrence of the item and reports
// whether it was held.
func (p *Party) RemoveItem(id string) bool {
	for i, held := range p.inventory {
		if held == id {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Roster is every adventurer registered at the guild, in or out of the
// party.
type Roster struct {
	members []*Character
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Members returns the roster in registration order.
func (r *Roster) Members() []*Character {
	out := make([]*Character, len(r.members))
	copy(out, r.members)
	return out
}

// Size returns the roster count.
func (r *Roster) Size() int { return len(r.members) }

// Find looks up a character by name.
func (r *Roster) Find(name string) (*Character, bool) {
	for _, m := range r.members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Has reports whether a character with the name is registered.
func (r *Roster) Has(name string) bool {
	_, ok := r.Find(name)
	return ok
}

// Add registers a character. Names are unique across the roster.
func (r *Roster) Add(c *Character) error {
	if r.Has(c.Name) {
		return ErrNameTaken
	}
	r.members = append(r.members, c)
	return nil
}
