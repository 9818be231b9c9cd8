package gui

import "fmt"

// Style is the look of every widget. Colors are packed 0xAABBGGRR.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32 // 0 = ButtonColor
	PanelHeaderTextColor uint32 // 0 = TextColor

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	SeparatorColor uint32
	FocusColor     uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	// Canvas frame drawn around images.
	ImageBorderColor uint32

	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	BorderSize    float32
}

// DefaultStyle is a neutral dark theme.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),
		FocusColor:     ColorCyan,

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		ImageBorderColor: ColorBlack,

		FontScale:     1,
		CharWidth:     8,
		CharHeight:    13,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		BorderSize:    1,
	}
}

// GTAStyle is black panels with cyan and yellow accents.
func GTAStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		PanelColor:           RGBA(0, 0, 0, 220),
		PanelBorderColor:     RGBA(100, 100, 100, 255),
		PanelHeaderBgColor:   RGBA(0, 60, 90, 255),
		PanelHeaderTextColor: RGBA(255, 200, 0, 255),

		ButtonColor:         RGBA(40, 40, 40, 255),
		ButtonHoveredColor:  RGBA(60, 80, 100, 255),
		ButtonActiveColor:   RGBA(0, 150, 200, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 150),

		InputBgColor:        RGBA(20, 20, 20, 255),
		InputFocusedBgColor: RGBA(30, 40, 50, 255),
		InputBorderColor:    RGBA(0, 150, 200, 255),

		SeparatorColor: RGBA(0, 150, 200, 128),
		FocusColor:     RGBA(0, 200, 255, 255),

		SliderTrackColor:  RGBA(30, 30, 30, 255),
		SliderFillColor:   RGBA(0, 120, 180, 255),
		SliderGrabColor:   RGBA(0, 150, 200, 255),
		SliderGrabHovered: RGBA(0, 180, 230, 255),
		SliderGrabActive:  RGBA(0, 200, 255, 255),

		ImageBorderColor: RGBA(0, 150, 200, 255),

		FontScale:     1.5,
		CharWidth:     8,
		CharHeight:    13,
		ItemSpacing:   6,
		PanelPadding:  12,
		ButtonPadding: 8,
		InputPadding:  6,
		BorderSize:    1,
	}
}

// StyleByName maps a configured style name to a Style. The empty name is
// the default style.
func StyleByName(name string) (Style, error) {
	switch name {
	case "", "default":
		return DefaultStyle(), nil
	case "gta":
		return GTAStyle(), nil
	}
	return Style{}, fmt.Errorf("unknown style %q", name)
}
