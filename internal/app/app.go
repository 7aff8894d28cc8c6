// Package app wires the client's long-lived collaborators together so
// commands receive one dependency instead of six.
package app

import (
	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/config"
	"github.com/s-stratton/simplyjobs/internal/core/session"
	"github.com/s-stratton/simplyjobs/internal/data/db"
	"github.com/s-stratton/simplyjobs/internal/data/stores"
	"github.com/s-stratton/simplyjobs/internal/notify"
)

// App holds the assembled collaborators. Populated in the CLI Before
// hook; commands hold a pointer to the pre-allocated struct.
type App struct {
	Config  *config.Config
	Session session.Session
	Client  *api.Client
	DB      *db.DB
	KV      *stores.KVStore
	Bridge  *notify.Bridge
}
