// Command minilogger builds the default logging module as a plugin:
//
//	go build -buildmode=plugin -o libs/logger-1.0.0.so ./plugins/minilogger
//
// The exported variable name is the last segment of the class name.
package main

import (
	"os"

	"github.com/sagit117/BuilderBricks/modules/minilogger"
)

// MiniLogger is looked up by the resolver for class bricks.logger.MiniLogger.
var MiniLogger = minilogger.New(os.Stderr, os.Getenv("BRICKS_LOG_FORMAT"))

func main() {}
