package main

import (
	"log"

	"decoherence/script"
)

// runAction executes the Starlark snippet bound to an activated slot, if
// the config binds one. Snippets see the player pose, zoom, and current
// stats as globals; exporting health/stamina/focus updates the stats
// panel. Unbound slots are selectable no-ops.
func (g *Game) runAction(row, col int, label string) {
	src, ok := g.cfg.Actions[label]
	if !ok || src == "" {
		return
	}

	globals := map[string]interface{}{
		"x":       g.player.Pos.X,
		"y":       g.player.Pos.Y,
		"heading": g.player.Angle,
		"zoom":    g.cam.Zoom,
		"health":  g.hud.Health,
		"stamina": g.hud.Stamina,
		"focus":   g.hud.Focus,
	}

	out, err := script.Run("slot-"+label, src, globals)
	if err != nil {
		log.Printf("action %q failed: %v", label, err)
		return
	}

	if v, ok := statValue(out["health"]); ok {
		g.hud.Health = clamp01(v)
	}
	if v, ok := statValue(out["stamina"]); ok {
		g.hud.Stamina = clamp01(v)
	}
	if v, ok := statValue(out["focus"]); ok {
		g.hud.Focus = clamp01(v)
	}
}

// statValue accepts either numeric type Starlark hands back.
func statValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
