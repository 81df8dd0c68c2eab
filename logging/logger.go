package logging

import "go.uber.org/zap"

var logger *zap.Logger

// Init builds the global logger. The development flavor prints
// human-readable output; production emits JSON.
func Init(env string) error {
	var err error
	if env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}

// L returns the global logger, falling back to production defaults when Init
// has not run.
func L() *zap.Logger {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
