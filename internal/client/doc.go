// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of the synchronizer.
//
// Commands have the form "<entity> <command> [args]", for example
//
//	content-keeper categories list
//	content-keeper posts create '{"title":"Hello","content":"..."}'
//	content-keeper items update 7 '{"name":"Vinyl"}'
//	content-keeper subcategories delete 3 4
//	content-keeper posts watch
//	content-keeper categories panel
//
// JSON inputs may be given as "-" to read them from stdin.
package client
