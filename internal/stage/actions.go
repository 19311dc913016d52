package stage

import "fmt"

// ActionStages returns the deterministic stage order used for an action.
func ActionStages(action string) ([]string, error) {
	switch action {
	case "simulate":
		return []string{
			"validate-config",
			"discover-sources",
			"ensure-dirs",
			"plan-batch",
			"lua-hook",
			"execute",
			"write-summary",
		}, nil
	case "simulate_gui":
		return []string{
			"validate-config",
			"discover-sources",
			"ensure-dirs",
			"plan-gui",
			"lua-hook",
			"execute",
		}, nil
	case "view_wave":
		return []string{
			"validate-config",
			"plan-view",
			"lua-hook",
			"execute",
		}, nil
	case "clean":
		return []string{
			"validate-config",
			"clean",
		}, nil
	default:
		return nil, fmt.Errorf("invalid action: %s", action)
	}
}

// PlanStages returns the stages that resolve the command plan for an action
// without touching the filesystem or spawning processes. Used by diagnose.
func PlanStages(action string) ([]string, error) {
	switch action {
	case "simulate":
		return []string{"validate-config", "discover-sources", "plan-batch", "lua-hook"}, nil
	case "simulate_gui":
		return []string{"validate-config", "discover-sources", "plan-gui", "lua-hook"}, nil
	case "view_wave":
		return []string{"validate-config", "plan-view", "lua-hook"}, nil
	default:
		return nil, fmt.Errorf("invalid action: %s", action)
	}
}
