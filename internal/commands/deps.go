package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/okra-platform/argsgen/internal/config"
)

// Interfaces for dependency injection
type ConfigLoader interface {
	LoadConfig() (*config.Config, string, error)
	LoadConfigFromPath(path string) (*config.Config, error)
}

type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type Output interface {
	Printf(format string, a ...any)
	Println(a ...any)
}

// Default implementations
type defaultConfigLoader struct{}

func (l *defaultConfigLoader) LoadConfig() (*config.Config, string, error) {
	return config.LoadConfig()
}

func (l *defaultConfigLoader) LoadConfigFromPath(path string) (*config.Config, error) {
	return config.LoadConfigFromPath(path)
}

type defaultSignalNotifier struct{}

func (n *defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (n *defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

type defaultOutput struct{}

func (o *defaultOutput) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (o *defaultOutput) Println(a ...any) {
	fmt.Println(a...)
}
