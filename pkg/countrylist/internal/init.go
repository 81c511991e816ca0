// Package internal holds the SDL infrastructure behind the country list: the
// window, fonts, theme, input mapping, power button handling and logging.
// Nothing here is part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
