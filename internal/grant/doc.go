// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grant implements the two-phase claim protocol: demand an
// authorization token for a resolved endpoint, then claim configuration
// values with it.
//
// The Demander and Claimer capabilities are pluggable; the package ships a
// static demander (pre-issued token), a client-credentials demander, a
// device-code demander, and an HTTP claimer. The Protocol state machine
// never retries; a failed stage is terminal for the current cycle.
package grant
