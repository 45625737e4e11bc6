package equihashtesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel defaults to NOOP so verification heavy tests stay quiet.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
