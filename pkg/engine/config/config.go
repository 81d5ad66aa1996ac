// Package config holds the immutable settings of one generation request:
// logic difficulty, keysanity, item placement rule, goal tuning and the seed.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LogicLevel selects which variant of every access formula applies.
type LogicLevel string

const (
	Normal LogicLevel = "normal"
	Hard   LogicLevel = "hard"
)

// KeyShuffle selects which games place their keys outside their home area.
type KeyShuffle string

const (
	KeysanityNone         KeyShuffle = "none"
	KeysanityBoth         KeyShuffle = "both"
	KeysanitySuperMetroid KeyShuffle = "supermetroid"
	KeysanityZelda        KeyShuffle = "zelda"
)

// PlacementRule restricts where progression items may be placed.
type PlacementRule string

const (
	PlaceAnywhere     PlacementRule = "anywhere"
	PlaceSameGame     PlacementRule = "same-game"
	PlaceOppositeGame PlacementRule = "opposite-game"
)

// Logic holds the fine grained logic toggles consulted by access formulas.
type Logic struct {
	PreventScrewAttackSoftLock    bool `yaml:"preventScrewAttackSoftLock" json:"preventScrewAttackSoftLock" env:"PREVENT_SCREW_ATTACK_SOFT_LOCK"`
	PreventFivePowerBombSeed      bool `yaml:"preventFivePowerBombSeed" json:"preventFivePowerBombSeed" env:"PREVENT_FIVE_POWER_BOMB_SEED"`
	LeftSandPitRequiresSpringBall bool `yaml:"leftSandPitRequiresSpringBall" json:"leftSandPitRequiresSpringBall" env:"LEFT_SAND_PIT_REQUIRES_SPRING_BALL"`
	LaunchPadRequiresIceBeam      bool `yaml:"launchPadRequiresIceBeam" json:"launchPadRequiresIceBeam" env:"LAUNCH_PAD_REQUIRES_ICE_BEAM"`
	WaterwayNeedsGravitySuit      bool `yaml:"waterwayNeedsGravitySuit" json:"waterwayNeedsGravitySuit" env:"WATERWAY_NEEDS_GRAVITY_SUIT"`
	EasyEastCrateriaSkyItem       bool `yaml:"easyEastCrateriaSkyItem" json:"easyEastCrateriaSkyItem" env:"EASY_EAST_CRATERIA_SKY_ITEM"`
	InfiniteBombJump              bool `yaml:"infiniteBombJump" json:"infiniteBombJump" env:"INFINITE_BOMB_JUMP"`
	ParlorSpeedBooster            bool `yaml:"parlorSpeedBooster" json:"parlorSpeedBooster" env:"PARLOR_SPEED_BOOSTER"`
	MoatSpecialBeam               bool `yaml:"moatSpecialBeam" json:"moatSpecialBeam" env:"MOAT_SPECIAL_BEAM"`
	FireRodDarkRooms              bool `yaml:"fireRodDarkRooms" json:"fireRodDarkRooms" env:"FIRE_ROD_DARK_ROOMS"`
}

// Config is fixed for the duration of a generation request.
type Config struct {
	Seed          string        `yaml:"seed" json:"seed" env:"SEED"`
	SMLogic       LogicLevel    `yaml:"smLogic" json:"smLogic" env:"SM_LOGIC" validate:"oneof=normal hard"`
	Z3Logic       LogicLevel    `yaml:"z3Logic" json:"z3Logic" env:"Z3_LOGIC" validate:"oneof=normal hard"`
	Keysanity     KeyShuffle    `yaml:"keysanity" json:"keysanity" env:"KEYSANITY" validate:"oneof=none both supermetroid zelda"`
	PlacementRule PlacementRule `yaml:"placementRule" json:"placementRule" env:"PLACEMENT_RULE" validate:"oneof=anywhere same-game opposite-game"`
	GanonCrystals int           `yaml:"ganonCrystals" json:"ganonCrystals" env:"GANON_CRYSTALS" validate:"gte=0,lte=4"`
	TourianBosses int           `yaml:"tourianBosses" json:"tourianBosses" env:"TOURIAN_BOSSES" validate:"gte=0,lte=4"`
	Multiworld    bool          `yaml:"multiworld" json:"multiworld" env:"MULTIWORLD"`
	Players       []string      `yaml:"players" json:"players,omitempty" env:"PLAYERS" envSeparator:"," validate:"dive,required,max=32"`
	MaxAttempts   int           `yaml:"maxAttempts" json:"maxAttempts" env:"MAX_ATTEMPTS" validate:"gte=1,lte=10"`
	Logic         Logic         `yaml:"logic" json:"logic" envPrefix:"LOGIC_"`
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SMZ3_"

// Default returns the settings used when nothing else is specified.
func Default() Config {
	return Config{
		SMLogic:       Normal,
		Z3Logic:       Normal,
		Keysanity:     KeysanityNone,
		PlacementRule: PlaceAnywhere,
		GanonCrystals: 4,
		TourianBosses: 4,
		MaxAttempts:   3,
	}
}

// Load reads a YAML file over the defaults, applies environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ConfigurationError{Problems: []string{fmt.Sprintf("parse %s: %v", path, err)}}
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SMZ3_ prefixed environment variables.
// Unset variables leave the field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks field ranges and cross-field consistency.
func (c Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}

	if c.Multiworld && len(c.Players) < 2 {
		problems = append(problems, "multiworld requires at least two players")
	}
	if !c.Multiworld && len(c.Players) > 1 {
		problems = append(problems, fmt.Sprintf("%d players given but multiworld is off", len(c.Players)))
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		key := strings.ToLower(p)
		if seen[key] {
			problems = append(problems, fmt.Sprintf("duplicate player %q", p))
		}
		seen[key] = true
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

// SMKeysanity reports whether Super Metroid keycards are shuffled.
func (c Config) SMKeysanity() bool {
	return c.Keysanity == KeysanityBoth || c.Keysanity == KeysanitySuperMetroid
}

// Z3Keysanity reports whether Zelda dungeon items may leave their dungeon.
func (c Config) Z3Keysanity() bool {
	return c.Keysanity == KeysanityBoth || c.Keysanity == KeysanityZelda
}

// PlayerNames returns the players of the request; a single player request
// always has exactly one, possibly unnamed, player.
func (c Config) PlayerNames() []string {
	if len(c.Players) == 0 {
		return []string{"Player"}
	}
	return append([]string(nil), c.Players...)
}
