package api

import (
	"github.com/lysyi3m/fda-feed/app/feed"
	"github.com/lysyi3m/fda-feed/app/source"
)

type Handler struct {
	store   *feed.Store
	sources []source.Source
}
