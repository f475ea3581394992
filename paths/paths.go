// This file is part of Dualscreen.
//
// Dualscreen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dualscreen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dualscreen.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// the base path for all resources. not used directly except in the
// getBasePath() function
const baseResourcePath = ".dualscreen"

// ResourcePath returns the resource path with the base resource path
// prepended. Either the subPth or the file argument can be empty.
//
// The directory part of the path is not created. Use MakeResourceDir() for
// that.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, subPth, file), nil
}

// MakeResourceDir is like ResourcePath() except that the returned path is a
// directory and it is created if it doesn't already exist.
func MakeResourceDir(subPth string) (string, error) {
	pth, err := ResourcePath(subPth, "")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return pth, nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, baseResourcePath[1:]), nil
}
