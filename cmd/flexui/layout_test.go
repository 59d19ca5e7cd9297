package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_PrintsTree(t *testing.T) {
	out, _, err := execute(t, "layout", "--config", "testdata/flexui.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Scene_Title scene (0,0 816x624)")
	assert.Contains(t, out, "Window_TitleCommand window (288,252 240x120) opacity=255")
	assert.Contains(t, out, `text "New Game" (300,264 216x36)`)
	assert.Contains(t, out, `text "Continue" (300,300 216x36)`)
	assert.Contains(t, out, `listitem "New Game" (300,264 216x36)`)
	assert.Contains(t, out, `listitem "Continue" (300,300 216x36)`)
	assert.Contains(t, out, "Window_Version window (0,576 160x48)")
	assert.Contains(t, out, "settled after 10 frame(s) at 20 fps, 8 element(s)")
}

func TestLayout_SceneArgAndSize(t *testing.T) {
	out, _, err := execute(t, "layout", "--config", "testdata/flexui.yaml", "--width", "1280", "--height", "720", "Scene_Title")
	require.NoError(t, err)

	assert.Contains(t, out, "Scene_Title scene (0,0 1280x720)")
	assert.Contains(t, out, "Window_TitleCommand window (520,300 240x120)")
	assert.Contains(t, out, "Window_Version window (0,672 160x48)")
}

func TestLayout_StillAnimating(t *testing.T) {
	out, _, err := execute(t, "layout", "--config", "testdata/flexui.yaml", "--frames", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "animating after 2 frame(s)")
}

func TestLayout_Metrics(t *testing.T) {
	out, _, err := execute(t, "layout", "--config", "testdata/flexui.yaml", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "flexui_transitions_started_total 1")
	assert.Contains(t, out, "flexui_transitions_completed_total 1")
	assert.Contains(t, out, "flexui_transitions_active 0")
}

func TestLayout_MissingWindow(t *testing.T) {
	out, _, err := execute(t, "layout", "--config", "testdata/flexui.yaml", "--window", "Window_TitleCommand,Window_Nope")
	require.NoError(t, err)
	assert.Contains(t, out, "no element for window Window_Nope")
}

func TestLayout_ListWithoutSelectableWindow(t *testing.T) {
	_, _, err := execute(t, "layout", "--config", "testdata/flexui.yaml", "--window", "Window_Version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no selectable host window")
}

func TestLayout_Errors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"no scene": {
			args:    []string{"layout", "--frames", "1"},
			wantErr: "no scene given",
		},
		"no designs": {
			args:    []string{"layout", "Scene_Title"},
			wantErr: "no design files given",
		},
		"unknown scene": {
			args:    []string{"layout", "--config", "testdata/flexui.yaml", "Scene_Nope"},
			wantErr: "Scene_Nope",
		},
		"invalid frames": {
			args:    []string{"layout", "--config", "testdata/flexui.yaml", "--frames", "-1"},
			wantErr: "frames",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
