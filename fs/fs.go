package fs

import (
	"os"
	"path/filepath"
	"strings"

	"blog-cli/term"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var Cwd string
var HomeDir string
var HomeBlogDir string
var LogPath string

func init() {
	var err error
	Cwd, err = os.Getwd()
	if err != nil {
		term.OutputErrorAndExit("Error getting current working directory: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	HomeBlogDir = homeBlogDir(home, os.Getenv("BLOG_ENV"))

	err = os.MkdirAll(HomeBlogDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit("Error creating home dir: %v", err)
	}

	LogPath = filepath.Join(HomeBlogDir, "blog.log")
}

func homeBlogDir(home, env string) string {
	if env == "development" {
		return filepath.Join(home, ".blog-cli-dev")
	}
	return filepath.Join(home, ".blog-cli")
}

// DotEnvPaths lists the env files LoadDotEnv reads, most specific first.
func DotEnvPaths() []string {
	return []string{
		filepath.Join(Cwd, ".env.local"),
		filepath.Join(Cwd, ".env"),
		filepath.Join(HomeBlogDir, ".env"),
	}
}

// LoadDotEnv reads whichever env files exist. Variables already set in the
// environment win, then earlier files win over later ones.
func LoadDotEnv() error {
	return loadDotEnv(DotEnvPaths())
}

func loadDotEnv(paths []string) error {
	var existing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return errors.Wrapf(err, "error reading %s", strings.Join(existing, ", "))
	}
	return nil
}
