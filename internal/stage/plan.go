package stage

import (
	"context"
	"errors"
)

// Tcl snippets handed to vsim via -do. Batch mode logs every signal
// recursively, runs to completion and quits; GUI mode only starts logging
// and leaves the session open.
const (
	batchDoScript = "log -r /* ; run -all; quit"
	guiDoScript   = "log -r /*"
)

func planBatchRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	meta, err := planMeta(in)
	if err != nil {
		return Envelope{}, err
	}
	p := meta.Project

	out := in
	out.Plan = append([]Invocation(nil), in.Plan...)
	out.Plan = append(out.Plan, compileInvocations(meta, in.Sources)...)

	args := append([]string(nil), p.VsimOptions...)
	args = append(args,
		"-c",
		"-do", batchDoScript,
		p.Top,
		"-work", meta.LibDir,
		"-l", meta.LogPath,
		"-wlf", meta.WavePath,
	)
	out.Plan = append(out.Plan, Invocation{Program: p.Tools.Vsim, Args: args})
	return out, nil
}

func planGuiRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	meta, err := planMeta(in)
	if err != nil {
		return Envelope{}, err
	}
	p := meta.Project

	out := in
	out.Plan = append([]Invocation(nil), in.Plan...)
	out.Plan = append(out.Plan, compileInvocations(meta, in.Sources)...)

	args := append([]string(nil), p.VsimOptions...)
	args = append(args,
		"-do", guiDoScript,
		p.Top,
		"-work", meta.LibDir,
	)
	out.Plan = append(out.Plan, Invocation{Program: p.Tools.Vsim, Args: args})
	return out, nil
}

// planViewRunner opens the waveform viewer on the previously generated
// waveform file. Whether the file exists is left to the tool's own error
// reporting.
func planViewRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	meta, err := planMeta(in)
	if err != nil {
		return Envelope{}, err
	}
	out := in
	out.Plan = append([]Invocation(nil), in.Plan...)
	out.Plan = append(out.Plan, Invocation{
		Program: meta.Project.Tools.Vsim,
		Args:    []string{"-view", meta.WavePath},
	})
	return out, nil
}

// compileInvocations builds the library-creation and compile commands that
// precede either simulation mode.
func compileInvocations(meta *Meta, sources []string) []Invocation {
	p := meta.Project
	vlogArgs := []string{"-work", meta.LibDir}
	vlogArgs = append(vlogArgs, sources...)
	return []Invocation{
		{Program: p.Tools.Vlib, Args: []string{meta.LibDir}},
		{Program: p.Tools.Vlog, Args: vlogArgs},
	}
}

func planMeta(in Envelope) (*Meta, error) {
	if in.Meta == nil || in.Meta.Project == nil {
		return nil, errors.New("plan: missing project configuration")
	}
	if in.Meta.LibDir == "" {
		return nil, errors.New("plan: paths not resolved; validate-config must run first")
	}
	return in.Meta, nil
}

func init() {
	Register("plan-batch", planBatchRunner)
	Register("plan-gui", planGuiRunner)
	Register("plan-view", planViewRunner)
}
