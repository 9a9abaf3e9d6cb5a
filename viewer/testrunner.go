package viewer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/convscan"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name,omitempty"`
	Value  int     `json:"value,omitempty"`
	Row    int     `json:"row,omitempty"`
	Col    int     `json:"col,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences configuration changes, injected actions, and
// screenshots across frames for automated visual testing. Attach it with
// RunConfig.Script or Viewer.SetTestRunner.
//
// Supported steps:
//
//	{"action": "screenshot", "label": "after-sobel"}
//	{"action": "wait", "frames": 30}
//	{"action": "press", "name": "toggle-play"}
//	{"action": "preset", "name": "Sobel X"}
//	{"action": "stride", "value": 2}
//	{"action": "padding", "name": "same"}
//	{"action": "norm", "name": "signed-map"}
//	{"action": "speed", "value": 40}
//	{"action": "weight", "row": 1, "col": 1, "weight": 2.5}
//	{"action": "quit"}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and validates every step.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses a test script from disk.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

func validateStep(st testStep) error {
	switch st.Action {
	case "screenshot", "wait", "quit", "speed", "weight":
		return nil
	case "press":
		_, err := ParseAction(st.Name)
		return err
	case "preset":
		_, err := convscan.LookupPreset(st.Name)
		return err
	case "stride":
		if st.Value < 1 {
			return fmt.Errorf("stride %d must be >= 1", st.Value)
		}
		return nil
	case "padding":
		_, err := convscan.ParsePadding(st.Name)
		return err
	case "norm":
		_, err := convscan.ParseNormalization(st.Name)
		return err
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Viewer.Update
// before injected and keyboard actions are applied.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	e := v.engine
	var err error
	switch st.Action {
	case "screenshot":
		v.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "press":
		var a Action
		if a, err = ParseAction(st.Name); err == nil {
			v.InjectAction(a)
		}
	case "preset":
		err = e.SetPreset(st.Name)
	case "stride":
		err = e.SetStride(st.Value)
	case "padding":
		var m convscan.PaddingMode
		if m, err = convscan.ParsePadding(st.Name); err == nil {
			err = e.SetPadding(m)
		}
	case "norm":
		var m convscan.Normalization
		if m, err = convscan.ParseNormalization(st.Name); err == nil {
			e.SetNormalization(m)
		}
	case "speed":
		e.SetSpeed(st.Value)
	case "weight":
		err = e.SetWeight(st.Row, st.Col, st.Weight)
	case "quit":
		v.quit = true
	}
	if err != nil {
		logf("test script step %d (%s): %v", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
