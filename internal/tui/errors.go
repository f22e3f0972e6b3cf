// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrInvalidOptions is returned by New for unusable program options.
var ErrInvalidOptions = errors.New("invalid tui options")
