package main

import (
	"log"

	"blog-cli/cmd"
	"blog-cli/fs"
	"blog-cli/term"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	err := fs.LoadDotEnv()
	if err != nil {
		term.OutputErrorAndExit("Error loading .env: %v", err)
	}

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.LogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}

func main() {
	cmd.Execute()
}
