// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the embedded gettext catalogs.

The bracefmt command assigns FS from its embedded "po" tree at init time.
Tests and other programs may assign any [fs.FS] with the same layout.
*/
package assets

import (
	"io/fs"
)

// FS provides access to the embedded file system.
var FS fs.FS
