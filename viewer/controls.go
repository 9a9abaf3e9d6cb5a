package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/convscan"
)

// Action is a single user command, produced by a key press, an injected
// event, or a test script step.
type Action uint8

const (
	ActionNone          Action = iota
	ActionTogglePlay           // play/pause the scan
	ActionStep                 // advance one sample
	ActionResetScan            // rewind the cursor, keep the output
	ActionRestart              // clear the output and rewind
	ActionSpeedUp              // +1 sample per tick
	ActionSpeedDown            // -1 sample per tick
	ActionSpeedUpFast          // +10 samples per tick
	ActionSpeedDownFast        // -10 samples per tick
	ActionCycleStride          // stride 1..maxStride
	ActionTogglePadding        // valid <-> same
	ActionCycleNorm            // clip -> signed-map -> abs-clip
	ActionKernelGrow           // zero kernel of size k+2
	ActionKernelShrink         // zero kernel of size k-2
	ActionScreenshot           // capture the next frame
	ActionQuit                 // stop the game loop
	actionPresetBase           // ActionPreset(i) = actionPresetBase + i
)

const (
	maxStride     = 4
	maxKernelSize = 9
	fastSpeedStep = 10
)

var actionNames = map[Action]string{
	ActionTogglePlay:    "toggle-play",
	ActionStep:          "step",
	ActionResetScan:     "reset",
	ActionRestart:       "restart",
	ActionSpeedUp:       "speed-up",
	ActionSpeedDown:     "speed-down",
	ActionSpeedUpFast:   "speed-up-fast",
	ActionSpeedDownFast: "speed-down-fast",
	ActionCycleStride:   "stride",
	ActionTogglePadding: "padding",
	ActionCycleNorm:     "norm",
	ActionKernelGrow:    "kernel-grow",
	ActionKernelShrink:  "kernel-shrink",
	ActionScreenshot:    "screenshot",
	ActionQuit:          "quit",
}

// ActionPreset returns the action selecting preset i (0-based) of
// convscan.Presets.
func ActionPreset(i int) Action {
	return actionPresetBase + Action(i)
}

// presetIndex reports the preset index selected by a, if any.
func (a Action) presetIndex() (int, bool) {
	if a < actionPresetBase {
		return 0, false
	}
	return int(a - actionPresetBase), true
}

// String returns the name accepted by ParseAction.
func (a Action) String() string {
	if i, ok := a.presetIndex(); ok {
		return "preset-" + strconv.Itoa(i+1)
	}
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction parses an action name such as "toggle-play" or "preset-3".
// Preset numbers are 1-based, matching the number keys.
func ParseAction(name string) (Action, error) {
	if rest, ok := strings.CutPrefix(name, "preset-"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > len(convscan.Presets()) {
			return ActionNone, fmt.Errorf("unknown action %q", name)
		}
		return ActionPreset(n - 1), nil
	}
	for a, s := range actionNames {
		if s == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// keyBinding maps a key (optionally with Shift held) to an action.
type keyBinding struct {
	key    ebiten.Key
	shift  bool
	action Action
}

var keyBindings = []keyBinding{
	{ebiten.KeySpace, false, ActionTogglePlay},
	{ebiten.KeyArrowRight, false, ActionStep},
	{ebiten.KeyR, false, ActionResetScan},
	{ebiten.KeyBackspace, false, ActionRestart},
	{ebiten.KeyArrowUp, false, ActionSpeedUp},
	{ebiten.KeyArrowDown, false, ActionSpeedDown},
	{ebiten.KeyArrowUp, true, ActionSpeedUpFast},
	{ebiten.KeyArrowDown, true, ActionSpeedDownFast},
	{ebiten.KeyS, false, ActionCycleStride},
	{ebiten.KeyP, false, ActionTogglePadding},
	{ebiten.KeyN, false, ActionCycleNorm},
	{ebiten.KeyBracketRight, false, ActionKernelGrow},
	{ebiten.KeyBracketLeft, false, ActionKernelShrink},
	{ebiten.KeyF12, false, ActionScreenshot},
	{ebiten.KeyEscape, false, ActionQuit},
	{ebiten.KeyDigit1, false, ActionPreset(0)},
	{ebiten.KeyDigit2, false, ActionPreset(1)},
	{ebiten.KeyDigit3, false, ActionPreset(2)},
	{ebiten.KeyDigit4, false, ActionPreset(3)},
	{ebiten.KeyDigit5, false, ActionPreset(4)},
	{ebiten.KeyDigit6, false, ActionPreset(5)},
	{ebiten.KeyDigit7, false, ActionPreset(6)},
}

func shiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// pollActions appends the actions whose keys were pressed this frame.
func pollActions(buf []Action) []Action {
	shift := shiftPressed()
	for _, b := range keyBindings {
		if b.shift == shift && inpututil.IsKeyJustPressed(b.key) {
			buf = append(buf, b.action)
		}
	}
	return buf
}

// applyEngineAction performs the engine side of a. Viewer-only actions
// (screenshot, quit) are ignored here.
func applyEngineAction(e *convscan.Engine, a Action) error {
	if i, ok := a.presetIndex(); ok {
		ps := convscan.Presets()
		if i >= len(ps) {
			return fmt.Errorf("preset %d out of range", i+1)
		}
		return e.SetPreset(ps[i].Name)
	}
	switch a {
	case ActionTogglePlay:
		e.TogglePlaying()
	case ActionStep:
		e.Step()
	case ActionResetScan:
		e.ResetScan()
	case ActionRestart:
		e.Restart()
	case ActionSpeedUp:
		e.SetSpeed(e.Speed() + 1)
	case ActionSpeedDown:
		e.SetSpeed(e.Speed() - 1)
	case ActionSpeedUpFast:
		e.SetSpeed(e.Speed() + fastSpeedStep)
	case ActionSpeedDownFast:
		e.SetSpeed(e.Speed() - fastSpeedStep)
	case ActionCycleStride:
		return e.SetStride(e.Stride()%maxStride + 1)
	case ActionTogglePadding:
		if e.Padding() == convscan.PaddingValid {
			return e.SetPadding(convscan.PaddingSame)
		}
		return e.SetPadding(convscan.PaddingValid)
	case ActionCycleNorm:
		e.SetNormalization((e.Normalization() + 1) % convscan.NormalizationCount)
	case ActionKernelGrow:
		if k := e.Kernel().Size(); k < maxKernelSize {
			return e.SetKernelSize(k + 2)
		}
	case ActionKernelShrink:
		if k := e.Kernel().Size(); k > 1 {
			return e.SetKernelSize(k - 2)
		}
	}
	return nil
}
