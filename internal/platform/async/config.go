package async

import "github.com/riskibarqy/trading-league/internal/platform/logging"

// Config is shared by loaders and invokers.
type Config struct {
	// Name identifies the call site in diagnostic logs.
	Name     string
	Executor Executor
	Logger   *logging.Logger
	// OnChange fires after every observable state transition, outside locks.
	OnChange func()
}

func (c Config) normalize() Config {
	if c.Name == "" {
		c.Name = "unnamed"
	}
	if c.Executor == nil {
		c.Executor = GoExecutor{}
	}
	if c.Logger == nil {
		c.Logger = logging.Default()
	}
	if c.OnChange == nil {
		c.OnChange = func() {}
	}
	return c
}
