package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/text"
)

const (
	prefix = "ROPKIT"

	LogLevel     = "LOG_LEVEL"
	AlignWidth   = "ALIGN_WIDTH"
	AlignPad     = "ALIGN_PAD"
	Alignment    = "ALIGNMENT"
	TickInterval = "TICK_INTERVAL"
	TickCount    = "TICK_COUNT"

	defaultLogLevel     = "info"
	defaultAlignWidth   = 20
	defaultAlignPad     = " "
	defaultAlignment    = "left"
	defaultTickInterval = time.Second
	defaultTickCount    = 3
)

// ParseConfiguration enables ROPKIT_ environment variables and reads confFile
// when one is given.
func ParseConfiguration(confFile string) error {
	viper.SetEnvPrefix(prefix)
	viper.AutomaticEnv() // read in environment variables that match

	if len(confFile) == 0 {
		zap.S().Debug("no config file specified")
		return nil
	}

	viper.SetConfigFile(confFile)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", confFile, err)
	}

	zap.S().Infof("using config file: %v", viper.ConfigFileUsed())
	return nil
}

func GetLogLevel() string {
	if !viper.IsSet(LogLevel) {
		return defaultLogLevel
	}
	return viper.GetString(LogLevel)
}

func GetAlignWidth() int {
	if !viper.IsSet(AlignWidth) {
		return defaultAlignWidth
	}
	return viper.GetInt(AlignWidth)
}

// GetAlignPad returns the first rune of the configured pad.
func GetAlignPad() rune {
	pad := defaultAlignPad
	if viper.IsSet(AlignPad) && viper.GetString(AlignPad) != "" {
		pad = viper.GetString(AlignPad)
	}
	return []rune(pad)[0]
}

func GetAlignment() rop.RwVE[text.Alignment, text.UnexpectedNames] {
	if !viper.IsSet(Alignment) {
		return text.ParseAlignment(defaultAlignment)
	}
	return text.ParseAlignment(viper.GetString(Alignment))
}

func GetTickInterval() time.Duration {
	if !viper.IsSet(TickInterval) {
		return defaultTickInterval
	}
	return viper.GetDuration(TickInterval)
}

func GetTickCount() int {
	if !viper.IsSet(TickCount) {
		return defaultTickCount
	}
	return viper.GetInt(TickCount)
}
