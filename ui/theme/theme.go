package theme

// Centralized theming for the region editor UI. Provides palette constants
// shared with the canvas renderer and InitStyles to activate a base theme and
// configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors. The canvas renderer consumes the hex
// values directly, so outline/affordance colors stay in one place.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, handle fill
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, region outlines
	ColorPrimaryHi = "#1d4ed8"
	ColorDanger    = "#dc2626" // destructive tools, delete affordances
	ColorAccent    = "#10b981" // selected regions, active state
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("tool.TButton") etc.
const (
	StyleToolButton   = "tool.TButton"
	StyleDangerButton = "danger.TButton"
	StyleActionButton = "action.TButton"
	StyleStateLabel   = "state.TLabel"
	StyleMutedLabel   = "muted.TLabel"
)

// InitStyles applies the palette and widget styles. Call once after the Tk
// app exists and before any styled widget is created.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	// Mode tool buttons
	StyleConfigure(StyleToolButton,
		Background(ColorSurface),
		Foreground(ColorText),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	// Destructive tools (delete point / delete region / clear)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	// Primary actions (process, save)
	StyleConfigure(StyleActionButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	// Active mode readout
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(ColorAccent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	// Secondary status text
	StyleConfigure(StyleMutedLabel,
		Foreground(ColorTextMuted),
		Background(ColorBg),
		Padding("2p 1p"),
	)
}
