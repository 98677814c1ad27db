/*
 * Nuts PAdES
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const moduleName = "PAdES"

var _logger = logrus.StandardLogger().WithField("module", moduleName)

// Log returns a logger which should be used for logging in this engine. It adds fields so
// log entries from this engine can be recognized.
func Log() *logrus.Entry {
	return _logger
}

// Setup configures the standard logger with the given level and format. Supported formats are
// "text", "json" and "prefixed".
func Setup(level, format string) error {
	return setup(logrus.StandardLogger(), os.Stdout, level, format)
}

func setup(logger *logrus.Logger, out io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.SetOutput(out)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "prefixed":
		logger.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: false,
			ForceColors:   true,
		})
	}
	return nil
}
