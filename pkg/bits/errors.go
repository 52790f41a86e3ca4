// Copyright Hartgen Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bits

import (
	"errors"
)

// ErrWidth signals that a runtime-specified width exceeds the static capacity
// of the value meant to hold it.  Widths are never silently truncated.
var ErrWidth = errors.New("width exceeds capacity")

// ErrUndefined signals an attempt to observe a definite numeric value while
// one or more contributing bits are unknown.  The possibly-unknown value
// itself remains valid for further bitwise manipulation.
var ErrUndefined = errors.New("undefined value")

// ErrLiteral signals a malformed numeric literal.
var ErrLiteral = errors.New("malformed literal")
