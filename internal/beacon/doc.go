// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package beacon implements the UDP side of endpoint discovery: the wire
// codec for beacon frames and a cancellable listen session that turns raw
// broadcast datagrams into a deduplicated, order-preserving stream of
// validated beacons.
//
// A beacon frame is a UTF-8 datagram of the form <magicPhrase><JSON>, where
// the JSON body deserializes to {"url": "<string>"}. Datagrams that do not
// start with the magic phrase are assumed to be unrelated broadcast traffic
// and are always skipped. Malformed payloads after the phrase are skipped in
// lenient mode and terminate the session in strict mode.
package beacon
