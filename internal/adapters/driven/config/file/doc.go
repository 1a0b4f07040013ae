// Package file provides a file-based implementation of the ConfigStore port.
// Configuration is read from a TOML file in the emoscope config directory;
// the store never writes it back.
package file
