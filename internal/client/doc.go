// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services and background workers into a
// single process lifecycle.
package client
