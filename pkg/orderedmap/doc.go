// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

// Package orderedmap provides a mapping from string keys to values of any
// type that preserves key insertion order.
package orderedmap
