package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidCatalog is returned when attack or damage data fails load-time validation.
var ErrInvalidCatalog = errors.New("invalid combat data")

// AttackCategory selects which catalog row an attack trigger resolves to.
type AttackCategory int

const (
	CategoryLight AttackCategory = iota
	CategoryTilt
	CategoryAerial
	CategorySmash
)

var categoryNames = map[AttackCategory]string{
	CategoryLight:  "light",
	CategoryTilt:   "tilt",
	CategoryAerial: "aerial",
	CategorySmash:  "smash",
}

func (c AttackCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseAttackCategory maps a catalog file name ("light", "Smash", ...) to a category.
func ParseAttackCategory(s string) (AttackCategory, error) {
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown attack category %q", s)
}

// AttackDirection is a tilt input quantized to one of five authored directions.
type AttackDirection int

const (
	DirectionNone AttackDirection = iota
	DirectionUp
	DirectionUpDiagonal
	DirectionForward
	DirectionDownDiagonal
	DirectionDown
)

var directionNames = map[AttackDirection]string{
	DirectionNone:         "",
	DirectionUp:           "up",
	DirectionUpDiagonal:   "up_diagonal",
	DirectionForward:      "forward",
	DirectionDownDiagonal: "down_diagonal",
	DirectionDown:         "down",
}

func (d AttackDirection) String() string {
	return directionNames[d]
}

// ParseAttackDirection maps a catalog file name to a direction. Empty means none.
func ParseAttackDirection(s string) (AttackDirection, error) {
	for d, name := range directionNames {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return DirectionNone, fmt.Errorf("unknown attack direction %q", s)
}

// AttackProfile is one immutable catalog row.
type AttackProfile struct {
	Name     string
	Category AttackCategory
	// Direction restricts a row to one tilt direction. DirectionNone matches any.
	Direction AttackDirection

	BaseDamage         float64
	BaseKnockbackForce float64
	// KnockbackDirection is advisory and authored facing right in screen space (y down).
	KnockbackDirection math.Vec2
	HitstunDuration    float64 // seconds

	AttackDuration      float64 // seconds spent in the attacking phase
	RecoveryDuration    float64 // seconds of lockout after the swing
	ChargeTime          float64 // 0 means the attack cannot be charged
	MaxChargeMultiplier float64

	HitboxOffset math.Vec2 // relative to the owner's center, facing right
	HitboxExtent math.Vec2 // half size
	HitboxDelay  float64   // seconds after the swing starts before the hitbox arms
}

// Validate reports every problem with a single profile.
func (p AttackProfile) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("attack has no name"))
	}
	if p.BaseDamage <= 0 {
		errs = append(errs, fmt.Errorf("%s: base damage must be > 0, got %v", p.Name, p.BaseDamage))
	}
	if p.BaseKnockbackForce <= 0 {
		errs = append(errs, fmt.Errorf("%s: knockback force must be > 0, got %v", p.Name, p.BaseKnockbackForce))
	}
	if p.HitstunDuration < 0 {
		errs = append(errs, fmt.Errorf("%s: hitstun duration must be >= 0", p.Name))
	}
	if p.AttackDuration <= 0 {
		errs = append(errs, fmt.Errorf("%s: attack duration must be > 0, got %v", p.Name, p.AttackDuration))
	}
	if p.RecoveryDuration < 0 {
		errs = append(errs, fmt.Errorf("%s: recovery duration must be >= 0", p.Name))
	}
	if p.ChargeTime < 0 {
		errs = append(errs, fmt.Errorf("%s: charge time must be >= 0", p.Name))
	}
	if p.MaxChargeMultiplier < 1 {
		errs = append(errs, fmt.Errorf("%s: max charge multiplier must be >= 1, got %v", p.Name, p.MaxChargeMultiplier))
	}
	// Smash is the only category routed through the charge path.
	if p.Category == CategorySmash && p.ChargeTime == 0 {
		errs = append(errs, fmt.Errorf("%s: smash attacks need a charge time", p.Name))
	}
	if p.HitboxExtent.X <= 0 || p.HitboxExtent.Y <= 0 {
		errs = append(errs, fmt.Errorf("%s: hitbox extent must be positive, got %v", p.Name, p.HitboxExtent))
	}
	if p.HitboxDelay < 0 || (p.HitboxDelay > 0 && p.HitboxDelay >= p.AttackDuration) {
		errs = append(errs, fmt.Errorf("%s: hitbox delay must fall inside the attack duration", p.Name))
	}
	return errors.Join(errs...)
}

// Catalog is the ordered list of attack rows. Order matters: lookups are first-match.
type Catalog struct {
	rows []AttackProfile
}

// NewCatalog copies rows into a catalog without validating them.
func NewCatalog(rows ...AttackProfile) *Catalog {
	c := &Catalog{rows: make([]AttackProfile, len(rows))}
	copy(c.rows, rows)
	return c
}

// Lookup returns the first row of the given category.
func (c *Catalog) Lookup(category AttackCategory) (AttackProfile, bool) {
	if c == nil {
		return AttackProfile{}, false
	}
	for _, row := range c.rows {
		if row.Category == category {
			return row, true
		}
	}
	return AttackProfile{}, false
}

// LookupDirectional prefers the first row authored for dir, even over an
// earlier row of the same category, and falls back to Lookup.
func (c *Catalog) LookupDirectional(category AttackCategory, dir AttackDirection) (AttackProfile, bool) {
	if c == nil {
		return AttackProfile{}, false
	}
	if dir != DirectionNone {
		for _, row := range c.rows {
			if row.Category == category && row.Direction == dir {
				return row, true
			}
		}
	}
	return c.Lookup(category)
}

// Rows returns a copy of the catalog rows in order.
func (c *Catalog) Rows() []AttackProfile {
	out := make([]AttackProfile, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *Catalog) Len() int {
	return len(c.rows)
}

// Validate checks every row and rejects duplicate names.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.rows))
	for _, row := range c.rows {
		if err := row.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[row.Name] {
			errs = append(errs, fmt.Errorf("duplicate attack name %q", row.Name))
		}
		seen[row.Name] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

// ShadowedRows lists rows that can never be returned by Lookup because an
// earlier row of the same category and direction wins.
func (c *Catalog) ShadowedRows() []string {
	type key struct {
		cat AttackCategory
		dir AttackDirection
	}
	seen := make(map[key]bool)
	var shadowed []string
	for _, row := range c.rows {
		k := key{row.Category, row.Direction}
		if seen[k] {
			shadowed = append(shadowed, row.Name)
			continue
		}
		seen[k] = true
	}
	return shadowed
}

// DefaultCatalog is the built-in move set used when no catalog file is given.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		AttackProfile{
			Name:                "jab",
			Category:            CategoryLight,
			BaseDamage:          3,
			BaseKnockbackForce:  300,
			KnockbackDirection:  math.NewVec2(1, -0.2),
			HitstunDuration:     0.2,
			AttackDuration:      0.15,
			RecoveryDuration:    0.1,
			MaxChargeMultiplier: 1,
			HitboxOffset:        math.NewVec2(18, 0),
			HitboxExtent:        math.NewVec2(10, 8),
		},
		AttackProfile{
			Name:                "forward_tilt",
			Category:            CategoryTilt,
			Direction:           DirectionForward,
			BaseDamage:          8,
			BaseKnockbackForce:  450,
			KnockbackDirection:  math.NewVec2(1, -0.4),
			HitstunDuration:     0.35,
			AttackDuration:      0.25,
			RecoveryDuration:    0.2,
			MaxChargeMultiplier: 1,
			HitboxOffset:        math.NewVec2(22, 0),
			HitboxExtent:        math.NewVec2(14, 8),
			HitboxDelay:         0.05,
		},
		AttackProfile{
			Name:                "up_tilt",
			Category:            CategoryTilt,
			Direction:           DirectionUp,
			BaseDamage:          7,
			BaseKnockbackForce:  420,
			KnockbackDirection:  math.NewVec2(0.2, -1),
			HitstunDuration:     0.35,
			AttackDuration:      0.25,
			RecoveryDuration:    0.2,
			MaxChargeMultiplier: 1,
			HitboxOffset:        math.NewVec2(4, -24),
			HitboxExtent:        math.NewVec2(12, 12),
			HitboxDelay:         0.05,
		},
		AttackProfile{
			Name:                "nair",
			Category:            CategoryAerial,
			BaseDamage:          6,
			BaseKnockbackForce:  380,
			KnockbackDirection:  math.NewVec2(1, -0.5),
			HitstunDuration:     0.3,
			AttackDuration:      0.3,
			RecoveryDuration:    0.15,
			MaxChargeMultiplier: 1,
			HitboxOffset:        math.NewVec2(0, 0),
			HitboxExtent:        math.NewVec2(20, 20),
		},
		AttackProfile{
			Name:                "forward_smash",
			Category:            CategorySmash,
			BaseDamage:          15,
			BaseKnockbackForce:  700,
			KnockbackDirection:  math.NewVec2(1, -0.5),
			HitstunDuration:     0.5,
			AttackDuration:      0.35,
			RecoveryDuration:    0.35,
			ChargeTime:          1.0,
			MaxChargeMultiplier: 2.0,
			HitboxOffset:        math.NewVec2(26, 0),
			HitboxExtent:        math.NewVec2(16, 10),
			HitboxDelay:         0.1,
		},
	)
}
