package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Puzzles PuzzlesConfig `mapstructure:"puzzles" validate:"required"`
	Scratch ScratchConfig `mapstructure:"scratch" validate:"required"`
	Cubes   CubesConfig   `mapstructure:"cubes" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// PuzzlesConfig selects which puzzles run and where their input lives.
type PuzzlesConfig struct {
	// InputDir holds one dayNN directory per puzzle with part1.txt and part2.txt.
	InputDir string `mapstructure:"input_dir" validate:"required"`
	Days     []int  `mapstructure:"days" validate:"required,min=1,dive,gte=1,lte=25"`
}

// ScratchConfig contains settings for the scratch-card engine.
type ScratchConfig struct {
	Strategy string `mapstructure:"strategy" validate:"required,oneof=worklist multiplier"`
}

// CubesConfig is the bag content the cube game checks against.
type CubesConfig struct {
	Red   int `mapstructure:"red" validate:"gte=0"`
	Green int `mapstructure:"green" validate:"gte=0"`
	Blue  int `mapstructure:"blue" validate:"gte=0"`
}
