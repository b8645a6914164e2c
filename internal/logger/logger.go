package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a console logger for local environments and a JSON
// production logger otherwise. The result is also installed as zap's global.
func New(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "local", "dev", "development", "test":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
