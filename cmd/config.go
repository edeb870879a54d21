package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"typest.dev/pkg/typest/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "typest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	verboseFlagName     = "verbose"
	runParallelFlagName = "parallel"
	runCheckersFlagName = "checkers"

	runParallelConfigKey = "run.parallel"
	runCheckersConfigKey = "run.checkers"
	checkerTimeoutKey    = "run.checker_timeout"
	excludeConfigKey     = "paths.exclude"

	mypyCommandKey    = "checker.mypy.command"
	mypyArgsKey       = "checker.mypy.args"
	pyrightCommandKey = "checker.pyright.command"
	pyrightArgsKey    = "checker.pyright.args"

	defaultCheckerTimeout = time.Minute * 2

	defaultReportsDir  = ".typest-reports"
	defaultRunParallel = 1

	envPrefix = "TYPEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".typest.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultRunCheckers = []string{adapter.MypyName, adapter.PyrightName}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runCheckersConfigKey, defaultRunCheckers)
	viper.SetDefault(checkerTimeoutKey, int64(defaultCheckerTimeout.Seconds()))
	viper.SetDefault(excludeConfigKey, []string{})

	viper.SetDefault(mypyCommandKey, adapter.MypyName)
	viper.SetDefault(mypyArgsKey, []string{})
	viper.SetDefault(pyrightCommandKey, adapter.PyrightName)
	viper.SetDefault(pyrightArgsKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// checkerTimeout reads run.checker_timeout as whole seconds. Non-positive
// values fall back to the default.
func checkerTimeout() time.Duration {
	seconds := viper.GetInt64(checkerTimeoutKey)
	if seconds <= 0 {
		return defaultCheckerTimeout
	}

	return time.Duration(seconds) * time.Second
}

// newCheckerRegistry builds the checker backends from the configured
// executables and extra arguments.
func newCheckerRegistry() *adapter.CheckerRegistry {
	return adapter.NewCheckerRegistry(
		adapter.NewMypy(viper.GetString(mypyCommandKey), viper.GetStringSlice(mypyArgsKey)...),
		adapter.NewPyright(viper.GetString(pyrightCommandKey), viper.GetStringSlice(pyrightArgsKey)...),
	)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
