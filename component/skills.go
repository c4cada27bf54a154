package component

import (
	"fmt"
	"math"
)

// GlobalCooldownDuration is the shared lockout applied after any successful
// skill use, in seconds.
const GlobalCooldownDuration = 1.0

// Skill is a single ability with its own cooldown.
type Skill struct {
	ID       string
	Name     string
	Cooldown float64 // seconds
	ManaCost int
	Level    int

	lastUsedTime float64
	onCooldown   bool
}

// NewSkill creates a skill ready for immediate use.
func NewSkill(id, name string, cooldown float64, manaCost, level int) *Skill {
	return &Skill{ID: id, Name: name, Cooldown: cooldown, ManaCost: manaCost, Level: level}
}

// CanUse reports whether the skill's own cooldown allows use.
func (s *Skill) CanUse(now float64) bool {
	return !s.onCooldown || now-s.lastUsedTime >= s.Cooldown
}

// Use consumes the skill, starting its cooldown. Returns false while still
// cooling down.
func (s *Skill) Use(now float64) bool {
	if !s.CanUse(now) {
		return false
	}
	s.lastUsedTime = now
	s.onCooldown = true
	return true
}

// UpdateCooldown clears the cooldown flag once the duration has elapsed.
func (s *Skill) UpdateCooldown(now float64) {
	if s.onCooldown && now-s.lastUsedTime >= s.Cooldown {
		s.onCooldown = false
	}
}

// CooldownRemaining returns the seconds left on the skill's cooldown.
func (s *Skill) CooldownRemaining(now float64) float64 {
	if !s.onCooldown {
		return 0
	}
	return math.Max(0, s.Cooldown-(now-s.lastUsedTime))
}

func (s *Skill) String() string {
	return fmt.Sprintf("Skill{id=%q, name=%q, lvl=%d, cd=%.1fs, cost=%d mana}",
		s.ID, s.Name, s.Level, s.Cooldown, s.ManaCost)
}

// Skills holds an entity's abilities and enforces both per-skill cooldowns
// and the shared global cooldown.
type Skills struct {
	skills         map[string]*Skill
	globalCooldown float64 // absolute time the global cooldown ends
}

// NewSkills creates an empty skill set.
func NewSkills() *Skills {
	return &Skills{skills: make(map[string]*Skill)}
}

// Add registers a skill, replacing any with the same ID.
func (s *Skills) Add(skill *Skill) {
	s.skills[skill.ID] = skill
}

// Remove deletes the skill with the given ID and returns it, or absence.
func (s *Skills) Remove(id string) (*Skill, bool) {
	skill, ok := s.skills[id]
	if ok {
		delete(s.skills, id)
	}
	return skill, ok
}

// Get returns the skill with the given ID, or absence.
func (s *Skills) Get(id string) (*Skill, bool) {
	skill, ok := s.skills[id]
	return skill, ok
}

// Len returns the number of registered skills.
func (s *Skills) Len() int {
	return len(s.skills)
}

// CanUse reports whether the skill may be used now: the global cooldown must
// have expired and the skill's own cooldown must allow it.
func (s *Skills) CanUse(id string, now float64) bool {
	if s.globalCooldown > now {
		return false
	}
	skill, ok := s.skills[id]
	return ok && skill.CanUse(now)
}

// Use fires the skill and starts the global cooldown. Returns false when
// either cooldown blocks it.
func (s *Skills) Use(id string, now float64) bool {
	if !s.CanUse(id, now) {
		return false
	}
	if !s.skills[id].Use(now) {
		return false
	}
	s.globalCooldown = now + GlobalCooldownDuration
	return true
}

// UpdateCooldowns refreshes every skill's cooldown flag.
func (s *Skills) UpdateCooldowns(now float64) {
	for _, skill := range s.skills {
		skill.UpdateCooldown(now)
	}
}

// GlobalCooldownActive reports whether the shared lockout is in effect.
func (s *Skills) GlobalCooldownActive(now float64) bool {
	return s.globalCooldown > now
}

// GlobalCooldownRemaining returns the seconds left on the shared lockout.
func (s *Skills) GlobalCooldownRemaining(now float64) float64 {
	return math.Max(0, s.globalCooldown-now)
}

func (s *Skills) String() string {
	return fmt.Sprintf("Skills{count=%d}", len(s.skills))
}
