// Package config manages the tti user configuration file.
//
// The file lives at the platform config directory (e.g.
// ~/.config/tti/config.yaml on Linux) and stores default encoding
// preferences: a default maximum aspect ratio, portrait orientation, and
// whether encode renders a terminal preview. Command-line flags always
// override file values; the file only supplies defaults.
//
// The registry is loaded lazily and cached for the life of the process:
//
//	reg, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	ratio := reg.Preferences.MaxRatio
//
// Saves are atomic (write to a temp file, then rename) so a crash cannot
// leave a half-written config behind.
package config
