// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

// Package template holds the ordered document model shared by the
// evaluator adapter and the emitters, and the JSON/YAML printers that
// serialize a document without disturbing mapping key order.
package template
