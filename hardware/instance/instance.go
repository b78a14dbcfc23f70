// This file is part of this software.
//
// This software is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This software is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this software.  If not, see <https://www.gnu.org/licenses/>.

// Package instance defines those parts of the emulation that might change
// from instance to instance of the Machine type but are not the machine
// itself. Particularly useful when running more than one emulator instance
// in the same process (e.g. a test harness running several firmware
// fixtures in sequence).
package instance

import "github.com/Davidslv/zigpod-sub010/internal/prefs"

// Instance carries the per-instance state that sits alongside, but outside,
// the emulated SoC proper: persisted preferences and an identifying label
// for log output.
type Instance struct {
	Label string
	Prefs *prefs.Disk
}

// New creates an Instance whose preferences are backed by prefsPath.
// Callers register setter keys on the returned Prefs (see config.NewStore)
// before calling Load/Save.
func New(label string, prefsPath string) (*Instance, error) {
	d, err := prefs.NewDisk(prefsPath)
	if err != nil {
		return nil, err
	}
	return &Instance{Label: label, Prefs: d}, nil
}
