package constants

// AppName names the config directory and the window title.
const AppName = "marquee"

// ConfigFile is the config file name inside the config directory.
const ConfigFile = "config.toml"

// SiteFile is the default page document name inside the config directory.
const SiteFile = "site.toml"

// TargetTPS is the ebiten tick rate; one tick is one render frame.
const TargetTPS = 60
