package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/yohamta/donburi/features/math"
)

// attackRow is the on-disk shape of one catalog row.
type attackRow struct {
	Name                string    `mapstructure:"name"`
	Category            string    `mapstructure:"category"`
	Direction           string    `mapstructure:"direction"`
	Damage              float64   `mapstructure:"damage"`
	KnockbackForce      float64   `mapstructure:"knockback_force"`
	KnockbackDirection  []float64 `mapstructure:"knockback_direction"`
	Hitstun             float64   `mapstructure:"hitstun"`
	AttackDuration      float64   `mapstructure:"attack_duration"`
	RecoveryDuration    float64   `mapstructure:"recovery_duration"`
	ChargeTime          float64   `mapstructure:"charge_time"`
	MaxChargeMultiplier float64   `mapstructure:"max_charge_multiplier"`
	HitboxOffset        []float64 `mapstructure:"hitbox_offset"`
	HitboxExtent        []float64 `mapstructure:"hitbox_extent"`
	HitboxDelay         float64   `mapstructure:"hitbox_delay"`
}

type archetypeRow struct {
	MaxHealth     float64         `mapstructure:"max_health"`
	CanBeDefeated *bool           `mapstructure:"can_be_defeated"`
	Weight        *WeightProfile  `mapstructure:"weight"`
	Damage        *DamageSettings `mapstructure:"damage"`
}

type catalogFile struct {
	Attacks    []attackRow             `mapstructure:"attacks"`
	Stale      *StaleConfig            `mapstructure:"stale"`
	Archetypes map[string]archetypeRow `mapstructure:"archetypes"`
}

// CombatData is everything a catalog file can carry.
type CombatData struct {
	Catalog    *Catalog
	Stale      StaleConfig
	Archetypes map[string]ArchetypeConfig
}

// LoadCatalog reads a catalog file (yaml, toml or json by extension). Values
// may be overridden with BRAWL_ prefixed environment variables.
func LoadCatalog(path string) (*CombatData, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("BRAWL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	data, err := decodeCatalog(v)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return data, nil
}

// ReadCatalog parses catalog content of the given type ("yaml", "json", ...).
func ReadCatalog(r io.Reader, configType string) (*CombatData, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return decodeCatalog(v)
}

func decodeCatalog(v *viper.Viper) (*CombatData, error) {
	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Attacks) == 0 {
		return nil, fmt.Errorf("%w: catalog has no attacks", ErrInvalidCatalog)
	}

	var errs []error
	rows := make([]AttackProfile, 0, len(file.Attacks))
	for i, row := range file.Attacks {
		p, err := row.profile()
		if err != nil {
			errs = append(errs, fmt.Errorf("attack %d: %w", i, err))
			continue
		}
		rows = append(rows, p)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	catalog := NewCatalog(rows...)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	data := &CombatData{
		Catalog:    catalog,
		Stale:      Stale,
		Archetypes: make(map[string]ArchetypeConfig, len(Archetypes)),
	}
	if file.Stale != nil {
		if err := file.Stale.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		data.Stale = *file.Stale
	}

	for name, a := range Archetypes {
		data.Archetypes[name] = a
	}
	for name, row := range file.Archetypes {
		a, ok := data.Archetypes[name]
		if !ok {
			a = Archetypes[ArchetypeFighter]
			a.Name = name
		}
		if row.MaxHealth > 0 {
			a.MaxHealth = row.MaxHealth
		}
		if row.CanBeDefeated != nil {
			a.CanBeDefeated = *row.CanBeDefeated
		}
		if row.Weight != nil {
			if err := row.Weight.Validate(); err != nil {
				return nil, fmt.Errorf("%w: archetype %s: %w", ErrInvalidCatalog, name, err)
			}
			a.Weight = *row.Weight
		}
		if row.Damage != nil {
			if err := row.Damage.Validate(); err != nil {
				return nil, fmt.Errorf("archetype %s: %w", name, err)
			}
			a.Damage = *row.Damage
		}
		data.Archetypes[name] = a
	}

	return data, nil
}

func (r attackRow) profile() (AttackProfile, error) {
	category, err := ParseAttackCategory(r.Category)
	if err != nil {
		return AttackProfile{}, err
	}
	direction, err := ParseAttackDirection(r.Direction)
	if err != nil {
		return AttackProfile{}, err
	}
	knockDir, err := vec2(r.KnockbackDirection, math.NewVec2(1, -0.5))
	if err != nil {
		return AttackProfile{}, fmt.Errorf("knockback_direction: %w", err)
	}
	offset, err := vec2(r.HitboxOffset, math.Vec2{})
	if err != nil {
		return AttackProfile{}, fmt.Errorf("hitbox_offset: %w", err)
	}
	extent, err := vec2(r.HitboxExtent, math.NewVec2(25, 25))
	if err != nil {
		return AttackProfile{}, fmt.Errorf("hitbox_extent: %w", err)
	}
	maxCharge := r.MaxChargeMultiplier
	if maxCharge == 0 {
		maxCharge = 1
	}
	return AttackProfile{
		Name:                r.Name,
		Category:            category,
		Direction:           direction,
		BaseDamage:          r.Damage,
		BaseKnockbackForce:  r.KnockbackForce,
		KnockbackDirection:  knockDir,
		HitstunDuration:     r.Hitstun,
		AttackDuration:      r.AttackDuration,
		RecoveryDuration:    r.RecoveryDuration,
		ChargeTime:          r.ChargeTime,
		MaxChargeMultiplier: maxCharge,
		HitboxOffset:        offset,
		HitboxExtent:        extent,
		HitboxDelay:         r.HitboxDelay,
	}, nil
}

func vec2(values []float64, fallback math.Vec2) (math.Vec2, error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 2:
		return math.NewVec2(values[0], values[1]), nil
	default:
		return math.Vec2{}, fmt.Errorf("want 2 components, got %d", len(values))
	}
}
