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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/dualscreen/paths"
	"github.com/jetsetilly/dualscreen/test"
)

func TestPaths(t *testing.T) {
	// a base resource directory in the current directory takes precedence
	// over the user's config directory
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".dualscreen", 0700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".dualscreen", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".dualscreen", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".dualscreen", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".dualscreen")

	pth, err = paths.MakeResourceDir("screenshots")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "Hybrid Top", "png")
	ok, err := regexp.MatchString(`^screenshot_Hybrid_Top_\d{8}_\d{6}\.png$`, fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, true)

	fn = paths.UniqueFilename("audio", "", "")
	ok, err = regexp.MatchString(`^audio_\d{8}_\d{6}$`, fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, true)
}
