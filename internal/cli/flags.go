package cli

import (
	"time"

	"exr/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Submit       bool
	ShowSuccess  bool
	TestTimeout  time.Duration
	BuildTimeout time.Duration
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Submit:       f.Submit,
		ShowSuccess:  f.ShowSuccess,
		TestTimeout:  f.TestTimeout,
		BuildTimeout: f.BuildTimeout,
	}
}
