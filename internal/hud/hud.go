// Package hud draws the 2D overlay: the text input bar at the bottom, the
// narration/status feed above it, and the connection state label. It is
// shown/hidden with ESC; while open it captures the keyboard and releases
// the mouse cursor.
package hud

import (
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/slalter/dreamscape/internal/commands"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of feed lines drawn above the input bar when the HUD is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	// maxFeedLines bounds the in-memory feed history.
	maxFeedLines = 500
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	feedBgColor = rl.NewColor(24, 24, 24, 240)
	statusColor = rl.NewColor(160, 200, 255, 255)
	errorColor  = rl.NewColor(255, 120, 120, 255)
)

// HUD is the overlay and input surface. Lines starting with "/" run through
// the command registry; everything else goes to OnSubmit, which forwards it
// to the dreamscape backend.
type HUD struct {
	reg      *commands.Registry
	inputBuf string
	open     bool

	feed   []feedLine
	status string

	// OnSubmit is called with non-command input lines.
	OnSubmit func(text string)
	// ConnState, if set, supplies the connection label drawn top-left.
	ConnState func() string
}

type feedLine struct {
	text  string
	isErr bool
}

// New returns a HUD that runs "/..." lines through reg. It starts closed;
// press ESC to open.
func New(reg *commands.Registry) *HUD {
	return &HUD{reg: reg}
}

// IsOpen returns true when the HUD is visible and capturing input (the
// camera should not receive mouse look).
func (h *HUD) IsOpen() bool {
	return h.open
}

// Narrate appends a narration line to the feed.
func (h *HUD) Narrate(text string) {
	h.append(text, false)
}

// SetStatus replaces the transient status label above the input bar.
func (h *HUD) SetStatus(message string) {
	h.status = message
}

// Error appends a highlighted error line to the feed.
func (h *HUD) Error(message string) {
	h.append("error: "+message, true)
}

func (h *HUD) append(text string, isErr bool) {
	h.feed = append(h.feed, feedLine{text: text, isErr: isErr})
	if len(h.feed) > maxFeedLines {
		h.feed = h.feed[len(h.feed)-maxFeedLines:]
	}
}

// Update handles ESC (toggle open/closed), and when open: typing, paste,
// backspace, enter. Call once per frame before the camera update.
func (h *HUD) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		h.open = !h.open
		if h.open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if !h.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS).
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			h.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			h.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(h.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(h.inputBuf)
		h.inputBuf = h.inputBuf[:len(h.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && h.inputBuf != "" {
		line := h.inputBuf
		h.inputBuf = ""
		h.Submit(line)
	}
}

// Submit routes one input line: slash commands to the registry, everything
// else to OnSubmit. Exposed so tests can drive the HUD without a window.
func (h *HUD) Submit(line string) {
	h.append(prompt+line, false)
	if args, isCmd := commands.Parse(line); isCmd {
		if err := h.reg.Execute(args); err != nil {
			h.Error(err.Error())
		}
		return
	}
	if h.OnSubmit != nil {
		h.OnSubmit(strings.TrimSpace(line))
	}
}

// FeedLen returns the number of lines in the feed.
func (h *HUD) FeedLen() int {
	return len(h.feed)
}

// Draw draws the input bar, the feed, and the status/connection labels.
// Call after the 3D pass, inside the 2D phase of the frame.
func (h *HUD) Draw() {
	if h.ConnState != nil {
		rl.DrawText(h.ConnState(), padding, padding, fontSize, statusColor)
	}
	if !h.open {
		if h.status != "" {
			rl.DrawText(h.status, padding, padding+lineHeight, fontSize, statusColor)
		}
		return
	}

	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	// Feed area above the bar: last maxLinesOnScreen lines.
	feedHeight := maxLinesOnScreen * lineHeight
	feedY := barY - feedHeight
	if feedY < 0 {
		feedHeight = barY
		feedY = 0
	}
	if feedHeight > 0 {
		rl.DrawRectangle(0, int32(feedY), int32(screenW), int32(feedHeight), feedBgColor)
	}
	start := 0
	if len(h.feed) > maxLinesOnScreen {
		start = len(h.feed) - maxLinesOnScreen
	}
	for i := start; i < len(h.feed); i++ {
		y := feedY + (i-start)*lineHeight + padding
		line := h.feed[i].text
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		color := rl.LightGray
		if h.feed[i].isErr {
			color = errorColor
		}
		rl.DrawText(line, padding, int32(y), fontSize, color)
	}

	if h.status != "" {
		rl.DrawText(h.status, padding, int32(barY-lineHeight), fontSize, statusColor)
	}

	// Input bar.
	rl.DrawRectangle(0, int32(barY), int32(screenW), BarHeight, barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+h.inputBuf+"|", padding, int32(barY+padding), fontSize, rl.White)
}
