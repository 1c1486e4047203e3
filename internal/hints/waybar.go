package hints

import (
	"encoding/json"
	"github.com/charmbracelet/lipgloss"
)

// WaybarModule is the custom module users paste into their Waybar config.
type WaybarModule struct {
	Exec       string `json:"exec"`
	ReturnType string `json:"return-type"`
	Format     string `json:"format"`
	OnClick    string `json:"on-click"`
	Interval   int    `json:"interval"`
	Tooltip    bool   `json:"tooltip"`
}

// RefreshInterval is how often Waybar re-runs tasuki, in seconds.
const RefreshInterval = 60

// NewWaybarModule builds the module for binary, opened in terminal on click.
func NewWaybarModule(binary, terminal string) WaybarModule {
	return WaybarModule{
		Exec:       binary,
		ReturnType: "json",
		Format:     "{}",
		OnClick:    LaunchCommand(terminal, binary),
		Interval:   RefreshInterval,
		Tooltip:    true,
	}
}

// Snippet renders the module as it appears inside Waybar's config.jsonc.
func (m WaybarModule) Snippet() (string, error) {
	body, err := json.MarshalIndent(map[string]WaybarModule{"custom/tasuki": m}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Box frames an advisory block with a title for terminal output.
func Box(title, body string) string {
	return boxStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}
