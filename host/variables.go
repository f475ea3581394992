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

package host

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/prefs"
)

// Variables is a table of configuration variables. It implements the
// config.Source and config.Enumerator interfaces and the Updated() function
// of the Environment interface.
type Variables struct {
	crit sync.Mutex
	vars map[string]*prefs.String

	updated atomic.Bool
}

// NewVariables is the preferred method of initialisation for the Variables
// type.
func NewVariables() *Variables {
	return &Variables{
		vars: make(map[string]*prefs.String),
	}
}

// SetOptions adds a variable for every option. New variables take their
// value from the command line prefs stack if there is an entry for them and
// the option's default value otherwise. Existing variables are unchanged.
func (v *Variables) SetOptions(opts []config.Option) {
	for _, o := range opts {
		v.crit.Lock()
		_, ok := v.vars[o.Key]
		v.crit.Unlock()
		if ok {
			continue
		}

		val := o.Default()
		if ok, cl := prefs.GetCommandLinePref(o.Key); ok {
			val = fmt.Sprintf("%v", cl)
		}
		_ = v.Set(o.Key, val)
	}
}

// Set the value of a variable, creating it if necessary.
func (v *Variables) Set(key string, value string) error {
	v.crit.Lock()
	p, ok := v.vars[key]
	if !ok {
		p = &prefs.String{}
		p.SetHookPost(func(_ prefs.Value) error {
			v.updated.Store(true)
			return nil
		})
		v.vars[key] = p
	}
	v.crit.Unlock()

	if ok && p.String() == value {
		return nil
	}

	if err := p.Set(value); err != nil {
		return fmt.Errorf("host: %s: %w", key, err)
	}
	return nil
}

// Cycle sets the variable to the value that follows its current value in
// the option's list of values.
func (v *Variables) Cycle(key string) error {
	o, ok := config.LookupOption(key)
	if !ok {
		return fmt.Errorf("host: %s: no such option", key)
	}
	cur, _ := v.Variable(key)
	next := o.Values[0]
	for i, val := range o.Values {
		if val == cur {
			next = o.Values[(i+1)%len(o.Values)]
			break
		}
	}
	return v.Set(key, next)
}

// Variable implements the config.Source interface.
func (v *Variables) Variable(key string) (string, bool) {
	v.crit.Lock()
	defer v.crit.Unlock()
	p, ok := v.vars[key]
	if !ok {
		return "", false
	}
	return p.String(), true
}

// Keys implements the config.Enumerator interface.
func (v *Variables) Keys() []string {
	v.crit.Lock()
	defer v.crit.Unlock()
	keys := make([]string, 0, len(v.vars))
	for k := range v.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Updated returns true if a variable has changed since the previous call.
func (v *Variables) Updated() bool {
	return v.updated.Swap(false)
}
