package config

type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Assets  AssetsConfig  `yaml:"assets"`
	Lang    LangConfig    `yaml:"lang"`
	Log     LogConfig     `yaml:"log"`
	Title   TitleConfig   `yaml:"title"`
	Network NetworkConfig `yaml:"network"`
}

type UIConfig struct {
	Style             string `yaml:"style"`
	Metrics           string `yaml:"metrics"`
	FrameRate         int    `yaml:"frame_rate"`
	KeyHoldFrames     int    `yaml:"key_hold_frames"`
	DoubleClickFrames int    `yaml:"double_click_frames"`
	MaxLineLength     int    `yaml:"max_line_length"`
	Mouse             *bool  `yaml:"mouse"`
	// FocusLock stops new dialogs while the terminal window is unfocused.
	FocusLock         bool   `yaml:"focus_lock"`
}

type AssetsConfig struct {
	Dir  string `yaml:"dir"`
	Zoom int    `yaml:"zoom"`
}

type LangConfig struct {
	Language string `yaml:"language"`
	Dir      string `yaml:"dir"`
}

type LogConfig struct {
	Dir    string `yaml:"dir"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

// TitleConfig positions are in a 1024×768 reference frame and scaled to
// the screen.
type TitleConfig struct {
	Image    string   `yaml:"image"`
	Logo     string   `yaml:"logo"`
	LogoX    int      `yaml:"logo_x"`
	LogoY    int      `yaml:"logo_y"`
	ButtonsX int      `yaml:"buttons_x"`
	ButtonsY int      `yaml:"buttons_y"`
	Padding  int      `yaml:"padding"`
	Buttons  []string `yaml:"buttons"`
	Version  string   `yaml:"version"`
}

type NetworkConfig struct {
	URL           string `yaml:"url"`
	PollTimeoutMS int    `yaml:"poll_timeout_ms"`
}
