package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; every entity and renderer lives on it.
const Default ecs.LayerID = iota

// CombatConfig contains combat timing values shared by every combatant
type CombatConfig struct {
	TickRate int // simulation ticks per second

	// WindowArmDelay is how long an externally opened hit window waits before
	// its hitbox starts reporting overlaps (seconds).
	WindowArmDelay float64

	// MaxChargeHold auto-releases a held smash after this many seconds.
	// 0 keeps the charge held until released.
	MaxChargeHold float64

	// SelfHitAllowed lets a hitbox report its own owner; off for every shipped mode.
	SelfHitAllowed bool

	HealthBarDuration float64 // seconds a health bar stays up after a hit
	FlashDuration     float64 // seconds of hit flash
	RespawnDelay      float64 // seconds a defeated combatant stays down
}

// StaleConfig controls move staling
type StaleConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	DecayWindow   float64 `mapstructure:"decay_window"`   // seconds a use counts toward the streak
	Step          float64 `mapstructure:"step"`           // multiplier lost per repeated use
	MinMultiplier float64 `mapstructure:"min_multiplier"` // floor
	RecoveryTime  float64 `mapstructure:"recovery_time"`  // seconds to ease back to 1.0 after the window
}

func (s StaleConfig) Validate() error {
	var errs []error
	if s.MinMultiplier <= 0 || s.MinMultiplier > 1 {
		errs = append(errs, fmt.Errorf("stale min multiplier must be in (0, 1], got %v", s.MinMultiplier))
	}
	if s.Step < 0 {
		errs = append(errs, fmt.Errorf("stale step must be >= 0, got %v", s.Step))
	}
	if s.DecayWindow < 0 || s.RecoveryTime < 0 {
		errs = append(errs, errors.New("stale windows must be >= 0"))
	}
	return errors.Join(errs...)
}

// WeightProfile describes how an archetype reacts to being launched
type WeightProfile struct {
	Weight              float64 `mapstructure:"weight"` // documents intent, not used by the formulas
	KnockbackResistance float64 `mapstructure:"knockback_resistance"`
	KnockbackScaling    float64 `mapstructure:"knockback_scaling"`
	HitstunMultiplier   float64 `mapstructure:"hitstun_multiplier"`
}

func (w WeightProfile) Validate() error {
	if w.KnockbackResistance <= 0 {
		return fmt.Errorf("knockback resistance must be > 0, got %v", w.KnockbackResistance)
	}
	return nil
}

// DamageSettings is the receiving side of the knockback formula
type DamageSettings struct {
	DamageMultiplier     float64 `mapstructure:"damage_multiplier"`
	BaseKnockback        float64 `mapstructure:"base_knockback"`
	KnockbackScalingBase float64 `mapstructure:"knockback_scaling_base"`
	HitstunDuration      float64 `mapstructure:"hitstun_duration"` // used when a hit carries none
}

// Validate rejects an exponent base <= 1, which would flatten or invert the
// percent curve.
func (d DamageSettings) Validate() error {
	var errs []error
	if d.KnockbackScalingBase <= 1 {
		errs = append(errs, fmt.Errorf("knockback scaling base must be > 1, got %v", d.KnockbackScalingBase))
	}
	if d.BaseKnockback <= 0 {
		errs = append(errs, fmt.Errorf("base knockback must be > 0, got %v", d.BaseKnockback))
	}
	if d.DamageMultiplier < 0 {
		errs = append(errs, fmt.Errorf("damage multiplier must be >= 0, got %v", d.DamageMultiplier))
	}
	if d.HitstunDuration < 0 {
		errs = append(errs, errors.New("hitstun duration must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

// ArchetypeConfig bundles the per-archetype combat tunables
type ArchetypeConfig struct {
	Name          string
	MaxHealth     float64
	CanBeDefeated bool
	Invulnerable  bool
	Weight        WeightProfile
	Damage        DamageSettings

	// Body
	Width, Height float64
	MoveSpeed     float64
	TintColor     color.RGBA
}

// DebugOptions replaces global show-hitbox toggles; it is handed to each facade
// and renderer explicitly.
type DebugOptions struct {
	ShowHitboxes  bool `json:"showHitboxes"`
	ShowHurtboxes bool `json:"showHurtboxes"`
	LogHits       bool `json:"logHits"`
}

// ArenaConfig holds the sandbox/simulator world values
type ArenaConfig struct {
	Width, Height int
	CellSize      int
	Gravity       float64 // px/s^2
	Friction      float64 // px/s^2 of ground braking while self-propelled
	MaxFallSpeed  float64
	JumpSpeed     float64
	DefaultMap    string // bundled arena name
}

// CameraConfig controls how the sandbox view follows the action
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the distance closed per frame
	ShakePerDamage  float64 // shake intensity in px per point of damage landed
	MaxShake        float64
	ShakeFrames     int
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Combat CombatConfig
var Stale StaleConfig
var Archetypes map[string]ArchetypeConfig
var Debug DebugOptions
var Arena ArenaConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey    = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Archetype names
const (
	ArchetypeFighter = "fighter"
	ArchetypeHeavy   = "heavy"
	ArchetypeDummy   = "dummy"
)

// DefaultWeight is the neutral weight profile.
func DefaultWeight() WeightProfile {
	return WeightProfile{
		Weight:              100,
		KnockbackResistance: 1,
		KnockbackScaling:    1,
		HitstunMultiplier:   1,
	}
}

// DefaultDamageSettings mirrors the shipped receiving-side tuning.
func DefaultDamageSettings() DamageSettings {
	return DamageSettings{
		DamageMultiplier:     1,
		BaseKnockback:        500,
		KnockbackScalingBase: 1.2,
		HitstunDuration:      0.5,
	}
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Combat = CombatConfig{
		TickRate:          60,
		WindowArmDelay:    0.1,
		MaxChargeHold:     0,
		HealthBarDuration: 1.5,
		FlashDuration:     0.25,
		RespawnDelay:      2.0,
	}

	Stale = StaleConfig{
		Enabled:       true,
		DecayWindow:   10.0,
		Step:          0.05,
		MinMultiplier: 0.7,
		RecoveryTime:  5.0,
	}

	Debug = DebugOptions{}

	Arena = ArenaConfig{
		Width:        640,
		Height:       360,
		CellSize:     16,
		Gravity:      1800,
		Friction:     1200,
		MaxFallSpeed: 900,
		JumpSpeed:    560,
		DefaultMap:   "training",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakePerDamage:  0.4,
		MaxShake:        6,
		ShakeFrames:     12,
	}

	heavyWeight := DefaultWeight()
	heavyWeight.Weight = 140
	heavyWeight.KnockbackResistance = 1.4
	heavyWeight.HitstunMultiplier = 0.8

	Archetypes = map[string]ArchetypeConfig{
		ArchetypeFighter: {
			Name:          ArchetypeFighter,
			MaxHealth:     100,
			CanBeDefeated: true,
			Weight:        DefaultWeight(),
			Damage:        DefaultDamageSettings(),
			Width:         16,
			Height:        40,
			MoveSpeed:     180,
			TintColor:     Blue,
		},
		ArchetypeHeavy: {
			Name:          ArchetypeHeavy,
			MaxHealth:     140,
			CanBeDefeated: true,
			Weight:        heavyWeight,
			Damage:        DefaultDamageSettings(),
			Width:         22,
			Height:        44,
			MoveSpeed:     130,
			TintColor:     Orange,
		},
		ArchetypeDummy: {
			Name:          ArchetypeDummy,
			MaxHealth:     100,
			CanBeDefeated: false,
			Weight:        DefaultWeight(),
			Damage:        DefaultDamageSettings(),
			Width:         20,
			Height:        40,
			TintColor:     Red,
		},
	}
}
