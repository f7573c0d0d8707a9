package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Style:             "menu",
			Metrics:           "cell",
			FrameRate:         100,
			KeyHoldFrames:     6,
			DoubleClickFrames: 40,
			MaxLineLength:     54,
			Mouse:             boolPtr(true),
		},
		Assets: AssetsConfig{
			Zoom: 1,
		},
		Lang: LangConfig{
			Language: "en",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Title: TitleConfig{
			Image:    "misc/title",
			Logo:     "misc/logo",
			LogoX:    60,
			LogoY:    80,
			ButtonsX: 720,
			ButtonsY: 260,
			Padding:  1,
			Buttons: []string{
				"tutorial_button", "campaign_button", "multiplayer_button",
				"load_button", "language_button", "preferences",
				"about_button", "quit_button",
			},
			Version: "0.1.0",
		},
		Network: NetworkConfig{
			PollTimeoutMS: 0,
		},
	}
}
