// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the build version of pklformation, set via ldflags on release.
var Version = "0.1.0"
