// Package clipboard provides the copy/paste register used by editing
// sessions, backed by either a session-local buffer or the system
// clipboard.
package clipboard

import (
	sysclip "github.com/atotto/clipboard"
	"github.com/nmelo/vellum/internal/logger"
)

// Register stores the most recently copied text. With system enabled it
// mirrors through the OS clipboard; failures there degrade silently to the
// internal buffer so editing keeps working in headless environments.
type Register struct {
	system   bool
	internal string
}

// New creates a register. system selects the OS clipboard backend.
func New(system bool) *Register {
	return &Register{system: system}
}

// Write stores text in the register.
func (r *Register) Write(text string) error {
	r.internal = text
	if r.system {
		if err := sysclip.WriteAll(text); err != nil {
			logger.Warnf("System clipboard write failed, using internal register: %v", err)
		}
	}
	return nil
}

// Read returns the register's current contents.
func (r *Register) Read() (string, error) {
	if r.system {
		text, err := sysclip.ReadAll()
		if err == nil {
			return text, nil
		}
		logger.Warnf("System clipboard read failed, using internal register: %v", err)
	}
	return r.internal, nil
}
