package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const fileName = "settings.json"

// DefaultNavbarColor is used when no color has been stored.
const DefaultNavbarColor = "#e3f2fd"

// NavColor is one whitelisted navbar background.
type NavColor struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AllowedNavColors lists the navbar colors the UI may use, in display
// order. The first entry doubles as the fallback for values outside
// the list.
var AllowedNavColors = []NavColor{
	{Value: "#e8f5e9", Label: "Mint"},
	{Value: "#e3f2fd", Label: "Light Blue"},
	{Value: "#ffeef3", Label: "Rose Tint"},
	{Value: "#f1f3f5", Label: "Light Gray"},
	{Value: "#ede7f6", Label: "Lavender"},
}

// Settings is the persisted user configuration record.
type Settings struct {
	AdditionalRoot string `json:"additional_root"`
	NavbarColor    string `json:"navbar_color"`
}

// Store reads and writes the settings file under one instance
// directory.
type Store struct {
	dir string

	*log.Logger
}

func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		Logger: log.New(log.Writer(), "[settings] ", log.LstdFlags),
	}
}

func defaults() Settings {
	return Settings{
		AdditionalRoot: "",
		NavbarColor:    DefaultNavbarColor,
	}
}

// Load returns the stored settings merged over the defaults. A missing
// or unreadable file is not an error; the defaults win.
func (s *Store) Load() Settings {
	merged := defaults()

	path := filepath.Join(s.dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Printf("failed to load settings file: %v", err)
		}
		return merged
	}

	if err := json.Unmarshal(data, &merged); err != nil {
		s.Printf("failed to parse settings file: %v", err)
		return defaults()
	}

	return merged
}

// Save writes the settings record, creating the instance directory when
// missing.
func (s *Store) Save(v Settings) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// NormalizeNavbarColor maps anything outside the whitelist to the first
// allowed color.
func NormalizeNavbarColor(v string) string {
	for _, c := range AllowedNavColors {
		if c.Value == v {
			return v
		}
	}
	return AllowedNavColors[0].Value
}
