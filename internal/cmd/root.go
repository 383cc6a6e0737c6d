package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.sr.ht/~mariusor/lw"
	"github.com/urfave/cli"
)

const (
	AppName    = "klassenbote"
	AppVersion = "(unknown)"
)

var (
	AppWebsite = "https://github.com/klassenbote"
	AppScopes  = []string{"read+write"}
)

var logger = lw.Dev()

var info = func(s string, args ...interface{}) {
	logger.Infof(s, args...)
}

var errFn = func(s string, args ...interface{}) {
	logger.Errorf(s, args...)
}

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func CachePath() string {
	xdgCachePath, _ := os.UserCacheDir()
	return filepath.Join(xdgCachePath, AppName)
}

func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	xdgDataPath := filepath.Join(homeDir, ".local", "share")
	appPath := filepath.Join(xdgDataPath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		if err := MkDirIfNotExists(appPath); err != nil {
			errFn("Error: %s", err)
			os.Exit(1)
		}
	}
	return appPath
}

// stringValue resolves a flag through the command's parent contexts.
func stringValue(c *cli.Context, p string) string {
	for {
		if c.IsSet(p) {
			if val := c.String(p); val != "" {
				return val
			}
		}
		if c = c.Parent(); c == nil {
			break
		}
	}
	return ""
}
