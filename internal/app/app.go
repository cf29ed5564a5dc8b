package app

import (
	"log"

	"lemmyopml/internal/domain"
	"lemmyopml/internal/lemmy"
	exportsvc "lemmyopml/internal/services/export"
	subscribesvc "lemmyopml/internal/services/subscribe"
)

// App bundles the client, credential source, and services for the CLI.
type App struct {
	Client      *lemmy.Client
	Credentials domain.PasswordSource
	Export      *exportsvc.Service
	Subscribe   *subscribesvc.Service
	Log         *log.Logger
}
