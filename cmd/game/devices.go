package main

import (
	"fmt"

	"github.com/younwookim/impala/internal/application/clock"
	"github.com/younwookim/impala/internal/application/game"
	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/application/replay"
	"github.com/younwookim/impala/internal/application/scene"
	"github.com/younwookim/impala/internal/infrastructure/ebitenio"
)

// Names used in settings.yaml
const (
	inputKeyboard  = "keyboard"
	inputMouse     = "mouse"
	inputReplay    = "replay"
	outputScreen   = "screen"
	outputRecorder = "recorder"
)

// newRegistry registers the demo's devices and scenes. With hardware set,
// the keyboard and mouse poll ebiten (unless a replay is playing).
func newRegistry(hardware bool) *game.Registry {
	return game.NewRegistry().
		RegisterInput(inputKeyboard, func(ctx *game.Context) (game.InputResource, error) {
			kb := input.NewKeyboard()
			if hardware && ctx.Settings.Replay.Play == "" {
				kb.AddDriver(ebitenio.NewKeyboardDriver(kb))
			}
			return kb, nil
		}).
		RegisterInput(inputMouse, func(ctx *game.Context) (game.InputResource, error) {
			m := input.NewMouse(input.DefaultButtons)
			if hardware && ctx.Settings.Replay.Play == "" {
				m.AddDriver(ebitenio.NewMouseDriver(m))
			}
			return m, nil
		}).
		RegisterInput(inputReplay, newReplayPlayer).
		RegisterOutput(outputScreen, func(ctx *game.Context) (game.OutputResource, error) {
			d := ctx.Settings.Display
			return ebitenio.NewScreen(d.ScreenWidth, d.ScreenHeight), nil
		}).
		RegisterOutput(outputRecorder, newReplayRecorder).
		RegisterScene(sceneTitle, newTitleScene).
		RegisterScene(scenePlaying, newPlayingScene)
}

func newReplayPlayer(ctx *game.Context) (game.InputResource, error) {
	data, err := replay.Load(ctx.Settings.Replay.Play)
	if err != nil {
		return nil, err
	}
	kb, _ := game.InputAs[*input.Keyboard](ctx, inputKeyboard)
	mouse, _ := game.InputAs[*input.Mouse](ctx, inputMouse)
	return replay.NewPlayer(*data, kb, mouse), nil
}

func newReplayRecorder(ctx *game.Context) (game.OutputResource, error) {
	kb, _ := game.InputAs[*input.Keyboard](ctx, inputKeyboard)
	mouse, _ := game.InputAs[*input.Mouse](ctx, inputMouse)
	return replay.NewRecorder(ctx.Settings.Replay.Record, ctx.Settings.GameID, kb, mouse)
}

// devices is what every demo scene needs from the engine context
type devices struct {
	ctx      *game.Context
	stack    scene.Stack
	clock    clock.Clock
	keyboard *input.Keyboard
	mouse    *input.Mouse
	screen   *ebitenio.Screen // nil when no screen output is configured
	width    int
	height   int
}

func lookupDevices(ctx *game.Context) (*devices, error) {
	kb, err := game.InputAs[*input.Keyboard](ctx, inputKeyboard)
	if err != nil {
		return nil, fmt.Errorf("demo scenes need a keyboard: %w", err)
	}
	mouse, err := game.InputAs[*input.Mouse](ctx, inputMouse)
	if err != nil {
		return nil, fmt.Errorf("demo scenes need a mouse: %w", err)
	}
	screen, _ := game.OutputAs[*ebitenio.Screen](ctx, outputScreen)

	return &devices{
		ctx:      ctx,
		stack:    ctx.Stack,
		clock:    ctx.Clock,
		keyboard: kb,
		mouse:    mouse,
		screen:   screen,
		width:    ctx.Settings.Display.ScreenWidth,
		height:   ctx.Settings.Display.ScreenHeight,
	}, nil
}
