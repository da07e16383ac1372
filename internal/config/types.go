package config

// Config is the top-level menu configuration, corresponding to .menu.yml.
type Config struct {
	APIBaseURL       string       `yaml:"api_base_url" koanf:"api_base_url"`
	PlaceholderImage string       `yaml:"placeholder_image" koanf:"placeholder_image"`
	ContainerID      string       `yaml:"container_id" koanf:"container_id"`
	ItemLink         string       `yaml:"item_link" koanf:"item_link"`
	HostPage         string       `yaml:"host_page" koanf:"host_page"`
	OutputDir        string       `yaml:"output_dir" koanf:"output_dir"`
	StaticDir        string       `yaml:"static_dir" koanf:"static_dir"`
	RenderTimeoutSec int          `yaml:"render_timeout_sec" koanf:"render_timeout_sec"`
	Server           ServerConfig `yaml:"server" koanf:"server"`
	DevAPI           DevAPIConfig `yaml:"devapi" koanf:"devapi"`
}

// ServerConfig holds settings for `menu serve`.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// DevAPIConfig holds settings for the local fixture API started by `menu devapi`.
type DevAPIConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	DBPath   string `yaml:"db_path" koanf:"db_path"`
	Fixtures string `yaml:"fixtures" koanf:"fixtures"`
	MongoIDs bool   `yaml:"mongo_ids" koanf:"mongo_ids"`
}
