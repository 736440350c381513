package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns the JSON production logger in production and the console
// development logger everywhere else.
func New(production bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("service", "kisan-api")), nil
}
