// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regex

import "errors"

var errNotARegex = errors.New("strada/regex: value does not wrap a compiled regex")
