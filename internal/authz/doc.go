// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authz decides whether a caller may perform an operation on a
// resource.
//
// [Authorize] returns a [Decision]. The caller's [models.Principal] is only
// reachable through [Decision.Allowed], so code that acts on behalf of a
// principal cannot be reached from a denied decision. Which roles may do
// what is declared once in a [Policy]; pairs missing from the policy are
// denied.
package authz
