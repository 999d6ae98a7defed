// Package config loads the directive-based simulation configuration file.
//
// The format is line oriented. Blank lines and lines starting with '#' are
// comments. Directives:
//
//	@nrows <uint>          required
//	@ncols <uint>          required
//	@config random|manual  required
//	@steps <uint>          optional, 0 = unlimited
//	@seed  <uint>          optional, 0 = time-derived
//	@grid                  start of the manual pattern section
//
// Unrecognized directives are ignored, as are directives whose value does not
// parse; a required directive with an unparseable value therefore counts as
// missing.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Init modes recognized by the initializer selection step. Load deliberately
// does not validate Mode against these; an unknown mode is caught when the
// initializer is chosen.
const (
	ModeRandom = "random"
	ModeManual = "manual"
)

// Config holds the parsed simulation parameters.
type Config struct {
	Rows  int
	Cols  int
	Steps uint64 // 0 = run indefinitely
	Seed  uint64 // 0 = derive from current time
	Mode  string
}

// Load parses the configuration file at path. It returns a *FileError when
// the file cannot be read and a *ConfigError when a required directive is
// missing or the dimensions are not positive.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	var cfg Config
	var rowsSet, colsSet, modeSet bool

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "@nrows":
			if v, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
				cfg.Rows = int(v)
				rowsSet = true
			}
		case "@ncols":
			if v, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
				cfg.Cols = int(v)
				colsSet = true
			}
		case "@steps":
			if v, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				cfg.Steps = v
			}
		case "@config":
			cfg.Mode = fields[1]
			modeSet = true
		case "@seed":
			if v, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				cfg.Seed = v
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Config{}, &FileError{Path: path, Err: err}
	}

	var missing []string
	if !rowsSet {
		missing = append(missing, "@nrows")
	}
	if !colsSet {
		missing = append(missing, "@ncols")
	}
	if !modeSet {
		missing = append(missing, "@config")
	}
	if len(missing) > 0 {
		return Config{}, &ConfigError{
			Reason: fmt.Sprintf("missing required directive(s): %s", strings.Join(missing, ", ")),
		}
	}
	if cfg.Rows == 0 || cfg.Cols == 0 {
		return Config{}, &ConfigError{Reason: "grid dimensions must be positive"}
	}
	return cfg, nil
}
