package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"war/game"
	"war/meta"
	"war/utils"
)

// Config holds all configuration for the application
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Game GameConfig `mapstructure:"game"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig holds the inputs of a single game
type GameConfig struct {
	Seed        uint64            `mapstructure:"seed"`
	Players     []string          `mapstructure:"players"`
	MaxTurns    int               `mapstructure:"max_turns"`
	Territories []TerritoryConfig `mapstructure:"territories"`
	Missions    []MissionConfig   `mapstructure:"missions"`
}

// TerritoryConfig describes one board entry, in board order
type TerritoryConfig struct {
	Name    string `mapstructure:"name"`
	Faction string `mapstructure:"faction"`
	Troops  int    `mapstructure:"troops"`
}

// MissionConfig describes one catalog entry
type MissionConfig struct {
	Kind        string `mapstructure:"kind"`
	Description string `mapstructure:"description"`
	Length      int    `mapstructure:"length"`
	Faction     string `mapstructure:"faction"`
	Percent     int    `mapstructure:"percent"`
	Count       int    `mapstructure:"count"`
	MinTroops   int    `mapstructure:"min_troops"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.players", []string{"Jogador 1", "Jogador 2"})
	v.SetDefault("game.max_turns", meta.MAX_TURNS)
}

// DefaultTerritories is the classic five-territory layout.
func DefaultTerritories() []TerritoryConfig {
	return []TerritoryConfig{
		{Name: "Brasil", Faction: "azul", Troops: 4},
		{Name: "Argentina", Faction: "vermelha", Troops: 3},
		{Name: "Chile", Faction: "vermelha", Troops: 2},
		{Name: "Peru", Faction: "azul", Troops: 5},
		{Name: "Colombia", Faction: "verde", Troops: 3},
	}
}

// DefaultMissions returns game.DefaultCatalog in configuration form.
func DefaultMissions() []MissionConfig {
	return utils.Map(game.DefaultCatalog(), func(m game.Mission) MissionConfig {
		return MissionConfig{
			Kind:        m.Kind.String(),
			Description: m.Description,
			Length:      m.Length,
			Faction:     string(m.Faction),
			Percent:     m.Percent,
			Count:       m.Count,
			MinTroops:   m.MinTroops,
		}
	})
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("WAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file in the default locations; use defaults
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if len(cfg.Game.Territories) == 0 {
		cfg.Game.Territories = DefaultTerritories()
	}
	if len(cfg.Game.Missions) == 0 {
		cfg.Game.Missions = DefaultMissions()
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Validate checks the configuration for values the engine cannot use
func Validate(c *Config) error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	if len(c.Game.Players) < meta.MIN_PLAYERS {
		return fmt.Errorf("game.players needs at least %d players", meta.MIN_PLAYERS)
	}
	if c.Game.MaxTurns <= 0 {
		return fmt.Errorf("game.max_turns must be positive")
	}
	if _, err := c.Game.Board(); err != nil {
		return fmt.Errorf("game.territories: %w", err)
	}
	if len(c.Game.Missions) == 0 {
		return fmt.Errorf("game.missions must not be empty")
	}
	for i, m := range c.Game.Missions {
		if m.Kind == "consecutive_run" && m.Length < 1 {
			return fmt.Errorf("game.missions[%d].length must be at least 1", i)
		}
		if m.Kind == "eliminate_faction" {
			if _, err := game.ParseFaction(m.Faction); err != nil {
				return fmt.Errorf("game.missions[%d].faction: %w", i, err)
			}
		}
		if m.Kind == "control_share" && (m.Percent <= 0 || m.Percent > 100) {
			return fmt.Errorf("game.missions[%d].percent must be between 1 and 100", i)
		}
		if m.Kind == "hold_garrisons" {
			if m.Count < 1 {
				return fmt.Errorf("game.missions[%d].count must be at least 1", i)
			}
			if m.MinTroops < 0 {
				return fmt.Errorf("game.missions[%d].min_troops must be non-negative", i)
			}
		}
	}

	return nil
}

// Board builds a fresh board from the configured territories
func (g *GameConfig) Board() (*game.Board, error) {
	territories := make([]game.Territory, 0, len(g.Territories))
	for _, t := range g.Territories {
		faction, err := game.ParseFaction(t.Faction)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
		territory, err := game.NewTerritory(t.Name, faction, t.Troops)
		if err != nil {
			return nil, err
		}
		territories = append(territories, territory)
	}
	return game.NewBoard(territories)
}

// Catalog builds the mission catalog. Entries with an unknown kind are kept;
// they can be drawn but are never accomplished.
func (g *GameConfig) Catalog() game.Catalog {
	catalog := make(game.Catalog, 0, len(g.Missions))
	for _, m := range g.Missions {
		kind, ok := game.ParseMissionKind(m.Kind)
		if !ok {
			log.Warn().Str("kind", m.Kind).Str("description", m.Description).Msg("unknown mission kind, it can never be accomplished")
		}
		catalog = append(catalog, game.Mission{
			Kind:        kind,
			Description: m.Description,
			Length:      m.Length,
			Faction:     game.Faction(m.Faction),
			Percent:     m.Percent,
			Count:       m.Count,
			MinTroops:   m.MinTroops,
		})
	}
	return catalog
}
