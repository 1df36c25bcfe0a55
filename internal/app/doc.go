// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the bookmark model, the tracker, storage, adapters,
// services and background workers into a single process lifecycle shared
// by the server and the command-line merger.
package app
