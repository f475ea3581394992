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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/dualscreen/prefs"
	"github.com/jetsetilly/dualscreen/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")

	test.ExpectSuccess(t, v.Set("Hybrid Top"))
	test.ExpectEquality(t, v.String(), "Hybrid Top")

	v.SetMaxLen(6)
	test.ExpectEquality(t, v.String(), "Hybrid")

	test.ExpectSuccess(t, v.Set(12345678))
	test.ExpectEquality(t, v.String(), "123456")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(int), 3)

	test.ExpectSuccess(t, v.Set(" 8 "))
	test.ExpectEquality(t, v.Get().(int), 8)

	test.ExpectFailure(t, v.Set("eight"))
	test.ExpectEquality(t, v.Get().(int), 8)
}

func TestHooks(t *testing.T) {
	var v prefs.String

	errRejected := errors.New("rejected")
	var posts int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(string) == "bad" {
			return errRejected
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		posts++
		return nil
	})

	test.ExpectSuccess(t, v.Set("good"))
	test.ExpectEquality(t, posts, 1)

	// the pre-hook prevents the value from being stored and the post-hook
	// from being called
	err := v.Set("bad")
	test.ExpectEquality(t, errors.Is(err, errRejected), true)
	test.ExpectEquality(t, v.String(), "good")
	test.ExpectEquality(t, posts, 1)
}
