package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the menu renderer.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Upstream API.
	apiPrompt := promptui.Prompt{
		Label:   "API base URL",
		Default: defaults.APIBaseURL,
		Validate: func(s string) error {
			probe := DefaultConfig()
			probe.APIBaseURL = strings.TrimSpace(s)
			return probe.Validate()
		},
	}
	apiBaseURL, err := apiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}

	// 2. Host page.
	hostPrompt := promptui.Prompt{
		Label:   "Host page HTML file (leave blank for the built-in page)",
		Default: "",
	}
	hostPage, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host page: %w", err)
	}

	// 3. Container element.
	containerPrompt := promptui.Prompt{
		Label:   "Container element id",
		Default: defaults.ContainerID,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("container id is required")
			}
			return nil
		},
	}
	containerID, err := containerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("container id: %w", err)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for rendered pages",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Serve port.
	portPrompt := promptui.Prompt{
		Label:    "Port for `menu serve`",
		Default:  strconv.Itoa(defaults.Server.Port),
		Validate: validatePortInput,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	cfg := defaults
	cfg.APIBaseURL = strings.TrimSpace(apiBaseURL)
	cfg.HostPage = strings.TrimSpace(hostPage)
	cfg.ContainerID = strings.TrimSpace(containerID)
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.Server.Port = port

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePortInput(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	return validPort("port", n)
}
