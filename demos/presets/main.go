// presets sweeps every kernel preset over the synthetic pattern at high
// speed, saving a screenshot once each full pass has completed, then quits.
// Useful as a visual regression run.
package main

import (
	"encoding/json"
	"log"

	"github.com/phanxgames/convscan"
	"github.com/phanxgames/convscan/viewer"
)

const (
	speed = 2000
	// 190x190 samples at 2000 per tick complete within 19 ticks.
	passFrames = 20
)

func sweepScript() ([]byte, error) {
	steps := []map[string]any{
		{"action": "speed", "value": speed},
	}
	for _, p := range convscan.Presets() {
		steps = append(steps,
			map[string]any{"action": "preset", "name": p.Name},
			map[string]any{"action": "wait", "frames": passFrames},
			map[string]any{"action": "screenshot", "label": p.Name},
		)
	}
	steps = append(steps, map[string]any{"action": "quit"})
	return json.Marshal(map[string]any{"steps": steps})
}

func main() {
	data, err := sweepScript()
	if err != nil {
		log.Fatal(err)
	}
	runner, err := viewer.LoadTestScript(data)
	if err != nil {
		log.Fatal(err)
	}

	engine, err := convscan.New(nil, convscan.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	if err := viewer.Run(engine, viewer.RunConfig{
		Title:         "convscan: Preset Sweep",
		Scale:         2,
		ShowFPS:       true,
		ShowHUD:       true,
		ScreenshotDir: "docs/demos/presets",
		Script:        runner,
	}); err != nil {
		log.Fatal(err)
	}
}
