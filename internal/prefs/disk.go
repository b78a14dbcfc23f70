// This file is part of this software.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written as the first line of every persisted prefs
// file.
const WarningBoilerPlate = "# this file is machine generated. editing by hand is okay but be careful."

// NoPrefsFile is returned (wrapped) by Load when the backing file does not
// yet exist. Callers should treat this as "use the defaults", not a fatal
// error.
var NoPrefsFile = errors.New("no prefs file")

// Disk associates named preference values with a backing file.
type Disk struct {
	path   string
	values map[string]setter
	order  []string
}

// NewDisk prepares a Disk backed by path. The file is not read until Load
// is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:   path,
		values: make(map[string]setter),
	}, nil
}

// Add registers a named value with the disk. The same name cannot be added
// twice.
func (d *Disk) Add(key string, v setter) error {
	if _, ok := d.values[key]; ok {
		return fmt.Errorf("prefs: key already registered: %s", key)
	}
	d.values[key] = v
	d.order = append(d.order, key)
	return nil
}

// Save writes every registered value to the backing file, one "key :: value"
// line per value, sorted by key.
func (d *Disk) Save() error {
	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("prefs: cannot save: %w", err)
	}
	defer f.Close()

	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s :: %s\n", k, d.values[k].String())
	}
	return w.Flush()
}

// Load reads the backing file and applies each matched line to its
// registered value. Lines for keys that have not been Add-ed are ignored.
// If allowMissing is true, a missing file is not an error (returns nil);
// otherwise it is reported wrapping NoPrefsFile.
func (d *Disk) Load(allowMissing ...bool) error {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			if len(allowMissing) > 0 && allowMissing[0] {
				return nil
			}
			return fmt.Errorf("prefs: %w", NoPrefsFile)
		}
		return fmt.Errorf("prefs: cannot load: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		parts := strings.SplitN(line, "::", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if v, ok := d.values[key]; ok {
			if err := v.load(val); err != nil {
				return fmt.Errorf("prefs: loading %s: %w", key, err)
			}
		}
	}
	return sc.Err()
}

// String renders every registered value as it would be saved, for display.
func (d *Disk) String() string {
	var s strings.Builder
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&s, "%s :: %s\n", k, d.values[k].String())
	}
	return s.String()
}
