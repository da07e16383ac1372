package config

const (
	// DefaultAPIBaseURL is the upstream API every page load reads from.
	DefaultAPIBaseURL = "http://localhost:5000/api"

	// DefaultPlaceholderImage is shown for items without an image.
	DefaultPlaceholderImage = "images/resource/menu-11.jpg"

	// DefaultContainerID identifies the host page element the menu is injected into.
	DefaultContainerID = "dynamic-menu-container"

	// DefaultConfigFile is the path used when --config is not given.
	DefaultConfigFile = ".menu.yml"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:       DefaultAPIBaseURL,
		PlaceholderImage: DefaultPlaceholderImage,
		ContainerID:      DefaultContainerID,
		ItemLink:         "#",
		OutputDir:        "dist",
		RenderTimeoutSec: 10,
		Server: ServerConfig{
			Port: 8080,
		},
		DevAPI: DevAPIConfig{
			Port:   5000,
			DBPath: ":memory:",
		},
	}
}
