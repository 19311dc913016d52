package stage

import (
	"context"
	"fmt"
	"path/filepath"
)

func discoverSourcesRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	// An explicit compile list wins over discovery; order is preserved.
	if len(in.Sources) > 0 {
		return in, nil
	}
	if in.Meta == nil || in.Meta.Project == nil {
		return Envelope{}, fmt.Errorf("discover-sources: missing project configuration")
	}
	p := in.Meta.Project
	if !p.Discovery.Enabled {
		return Envelope{}, fmt.Errorf("discover-sources: no source files configured and discovery is disabled")
	}

	absRoot, err := filepath.Abs(p.SrcDir)
	if err != nil {
		return Envelope{}, err
	}
	found, err := findHDLSources(absRoot, p.Discovery.NoGitignore)
	if err != nil {
		return Envelope{}, err
	}
	if len(found) == 0 {
		return Envelope{}, fmt.Errorf("discover-sources: no HDL sources found under %s", p.SrcDir)
	}

	out := in
	out.Sources = make([]string, 0, len(found))
	for _, rel := range found {
		out.Sources = append(out.Sources, filepath.Join(p.SrcDir, filepath.FromSlash(rel)))
	}
	return out, nil
}

func init() { Register("discover-sources", discoverSourcesRunner) }
