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

package logger_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/test"
)

func TestStructured(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	log := logger.NewLogger(10)
	log.SetStructured(zap.New(core))

	log.Log(logger.Allow, "renderer", "accelerated backend unavailable")
	log.Log(logger.Allow, "renderer", "accelerated backend unavailable")
	log.Log(logger.Allow, "adapter", "loaded")

	entries := logs.AllUntimed()
	test.DemandEquality(t, len(entries), 3)

	test.ExpectEquality(t, entries[0].Message, "accelerated backend unavailable")
	test.ExpectEquality[any](t, entries[0].ContextMap()["tag"], "renderer")
	test.ExpectEquality[any](t, entries[1].ContextMap()["repeat"], int64(2))
	test.ExpectEquality[any](t, entries[2].ContextMap()["tag"], "adapter")

	// the ring still collapses the repeat
	test.ExpectEquality(t, log.Len(), 2)

	log.SetStructured(nil)
	log.Log(logger.Allow, "adapter", "unloaded")
	test.ExpectEquality(t, logs.Len(), 3)
}
