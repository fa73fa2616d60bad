// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the phonebook command-line client.
//
// It wires configuration, the remote contact store adapters, the local
// SQLite storages and the client services into a cobra command tree, and
// renders results as styled text or JSON.
package client
