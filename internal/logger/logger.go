package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger for the given environment. Production gets JSON
// output with sampling; everything else gets the human-readable development
// console encoder.
func New(environment string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if environment == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
