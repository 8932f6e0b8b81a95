// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no HTTP handler
	// was provided.
	errNoServersAreCreated = errors.New("no servers are created")
)
