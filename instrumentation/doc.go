// This file is part of Harness65.
//
// Harness65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Harness65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Harness65.  If not, see <https://www.gnu.org/licenses/>.

// Package instrumentation measures the average duration of a bus cycle. The
// measuring form of the package is built only when the "instrumentation"
// build constraint is present; without it every function is a no-op and the
// bus loop pays nothing for the package's existence.
//
// The probe accumulates the elapsed time between consecutive cycle starts.
// The debugger asks for a report whenever it emits a transcript line; the
// probe is never reported from inside the timed part of the loop.
package instrumentation
