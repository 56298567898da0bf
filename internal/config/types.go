package config

// Config is the resolved configuration for one invocation.
type Config struct {
	Pushover     PushoverConfig      `toml:"pushover"`
	Notification *NotificationConfig `toml:"notification"`
	Logging      LoggingConfig       `toml:"logging"`
	Transport    TransportConfig     `toml:"transport"`
	Journal      JournalConfig       `toml:"journal"`
}

// PushoverConfig carries the API credentials.
//
// The user and token keys must be present in the file. Empty values are
// passed through unchecked; the API answers with its own diagnostics.
type PushoverConfig struct {
	User         string `toml:"user"`
	Token        string `toml:"token"`
	DefaultTitle string `toml:"default_title"`
}

// NotificationConfig carries optional delivery settings. The whole section
// may be omitted.
type NotificationConfig struct {
	Sound  string `toml:"sound"`
	Device string `toml:"device"`
}

// LoggingConfig controls diagnostics output. Level defaults to "warn" so a
// successful run stays quiet; journald selects the systemd journal sink in
// addition to stderr.
type LoggingConfig struct {
	Level    string `toml:"level"`
	Journald bool   `toml:"journald"`
}

// TransportConfig sets optional socket timeouts.
//
// All values are Go duration strings (e.g. "500ms", "10s"). Zero or omitted
// disables the bound, matching the historical blocking behavior.
type TransportConfig struct {
	ConnectTimeout string `toml:"connect_timeout"`
	ReadTimeout    string `toml:"read_timeout"`
	WriteTimeout   string `toml:"write_timeout"`
}

// JournalConfig controls the optional local delivery journal. An empty path
// disables it.
type JournalConfig struct {
	Path string `toml:"path"`
}
