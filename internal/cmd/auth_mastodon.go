package cmd

import (
	"encoding/gob"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/McKael/madon"
)

const ExecOpenCmd = "xdg-open"

// CheckMastodonCredentialsFile loads saved credentials for the instance, or
// runs the OAuth2 flow to create them.
func CheckMastodonCredentialsFile(path, key, secret, token, instance string, dryRun bool, getAccessTokenFn func() (string, error)) (*madon.Client, error) {
	app := new(madon.Client)
	if err := loadMastodonCredentials(app, filepath.Join(path, InstanceName(instance))); err != nil {
		if len(key) > 0 && len(secret) > 0 {
			app.ID = key
			app.Secret = secret
			app.Name = AppName
			app.InstanceURL = "https://" + instance
			app.APIBase = app.InstanceURL + "/api/v1"
			app.UserToken = new(madon.UserToken)
			if len(token) > 0 {
				app.UserToken.AccessToken = token
			}
		} else {
			if app, err = madon.NewApp(AppName, AppWebsite, AppScopes, "", instance); err != nil {
				return nil, fmt.Errorf("unable to initialize mastodon application: %w", err)
			}
		}
	}
	if ValidMastodonAuth(app) {
		return app, saveMastodonCredentials(app, filepath.Join(path, InstanceName(app.InstanceURL)))
	}
	if !dryRun {
		userAuthURI, err := app.LoginOAuth2("", nil)
		if err != nil {
			return nil, fmt.Errorf("unable to login to %s: %w", app.InstanceURL, err)
		}
		if err = exec.Command(ExecOpenCmd, userAuthURI).Run(); err != nil {
			fmt.Printf("Go to this URL in your browser: %s\n", userAuthURI)
		}
		if app.UserToken == nil {
			app.UserToken = new(madon.UserToken)
		}
		tok, err := getAccessTokenFn()
		if err != nil {
			return nil, fmt.Errorf("unable to login to %s: %w", app.InstanceURL, err)
		}
		if tok == "" {
			return nil, fmt.Errorf("empty authentication token")
		}
		app.UserToken.AccessToken = tok
		app.UserToken.CreatedAt = time.Now().UnixMilli()
		if !ValidMastodonAuth(app) {
			return nil, fmt.Errorf("unable to get user authorization")
		}
		if err := saveMastodonCredentials(app, filepath.Join(path, InstanceName(app.InstanceURL))); err != nil {
			errFn("unable to save credentials: %s", err)
		}
	}
	return app, nil
}

// LoadMastodonClient reads previously saved credentials; it never starts an
// interactive flow.
func LoadMastodonClient(path, instance string) (*madon.Client, error) {
	app := new(madon.Client)
	if err := loadMastodonCredentials(app, filepath.Join(path, InstanceName(instance))); err != nil {
		return nil, err
	}
	if !ValidMastodonAuth(app) {
		return nil, fmt.Errorf("invalid credentials for %s, run the auth command first", instance)
	}
	return app, nil
}

func InstanceName(inst string) string {
	if u, err := url.ParseRequestURI(inst); err == nil && u.Host != "" {
		inst = u.Host
	}
	return url.PathEscape(filepath.Clean(filepath.Base(inst)))
}

func ValidMastodonAuth(c *madon.Client) bool {
	return ValidMastodonApp(c) && c.UserToken != nil && c.UserToken.AccessToken != ""
}

func ValidMastodonApp(c *madon.Client) bool {
	return c != nil && c.Name != "" && c.ID != "" && c.Secret != "" && c.APIBase != "" && c.InstanceURL != ""
}

func loadMastodonCredentials(c *madon.Client, path string) error {
	f, err := os.OpenFile(path, os.O_RDONLY, 0600)
	if err != nil {
		return fmt.Errorf("unable to load credentials file %s: %w", path, err)
	}
	defer f.Close()
	d := gob.NewDecoder(f)
	return d.Decode(c)
}

func saveMastodonCredentials(c *madon.Client, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open file %w", err)
	}
	defer f.Close()

	d := gob.NewEncoder(f)
	return d.Encode(c)
}
