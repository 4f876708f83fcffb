// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build windows

package codeblock

// NativeLineSeparator is the line separator of the host platform.
const NativeLineSeparator = "\r\n"
