package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"fishchase/internal/game"
)

const windowTitle = "Swimmy"

// initWindow opens the game window sized to the primary monitor's work area
// and centred in it. The window can shrink no further than the minimum
// playable size.
func initWindow(log zerolog.Logger) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	var areaX, areaY, areaW, areaH int
	if m := glfw.GetPrimaryMonitor(); m != nil {
		areaX, areaY, areaW, areaH = m.GetWorkarea()
	}
	w, h := game.FitWindow(areaW, areaH)

	window, err := glfw.CreateWindow(w, h, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetSizeLimits(game.MinWindowWidth, game.MinWindowHeight, glfw.DontCare, glfw.DontCare)
	if areaW > w && areaH > h {
		window.SetPos(areaX+(areaW-w)/2, areaY+(areaH-h)/2)
	}
	window.Show()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	log.Debug().Int("work_width", areaW).Int("work_height", areaH).
		Int("width", w).Int("height", h).Msg("window created")
	return window, nil
}
