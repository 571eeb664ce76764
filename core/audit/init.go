// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package audit holds logging helpers shared by the bracefmt commands.
*/
package audit

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetDefaultLogger provides an ok log output format on startup if no config is set.
func SetDefaultLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
}

// Sys returns a child of the global logger tagged with the subsystem name,
// for example "i18n" or "catalog".
func Sys(name string) zerolog.Logger {
	return log.With().Str("sys", name).Logger()
}
