package stage

import (
	"strings"

	"github.com/flarebyte/wavesmith/internal/config"
)

// Invocation is one external command to run: a program and its ordered
// argument list.
type Invocation struct {
	Program string   `json:"program"`
	Args    []string `json:"args"`
}

// String renders the command line the way it is echoed before execution.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Program
	}
	return i.Program + " " + strings.Join(i.Args, " ")
}

// Meta holds the resolved, immutable settings shared by all stages of one
// action. Derived paths are filled in by validate-config.
type Meta struct {
	Action  string          `json:"action"`
	Project *config.Project `json:"project,omitempty"`
	// LibDir is the simulation library passed to -work.
	LibDir string `json:"libDir,omitempty"`
	// LogPath is the simulator transcript inside SimDir.
	LogPath string `json:"logPath,omitempty"`
	// WavePath is the waveform file inside SimDir.
	WavePath string `json:"wavePath,omitempty"`
}

// Envelope is the contract passed between stages. Sources is the ordered
// compile list and Plan the ordered external invocations to perform.
type Envelope struct {
	Meta    *Meta        `json:"meta,omitempty"`
	Sources []string     `json:"sources,omitempty"`
	Plan    []Invocation `json:"plan,omitempty"`
}

// NewEnvelope seeds an envelope for one action over the given project.
func NewEnvelope(action string, prj *config.Project) Envelope {
	return Envelope{Meta: &Meta{Action: action, Project: prj}}
}
