package controller

import (
	"github.com/shutterclub/photocontest/internal/pkg/store"
	"github.com/shutterclub/photocontest/internal/service/auth"
	"github.com/shutterclub/photocontest/internal/service/contest"
	"github.com/shutterclub/photocontest/internal/service/entry"
	"github.com/shutterclub/photocontest/internal/service/export"
	"github.com/shutterclub/photocontest/internal/service/gallery"
	"github.com/shutterclub/photocontest/internal/service/judge"
)

type Controller struct {
	authService    *auth.Service
	contestService *contest.Service
	entryService   *entry.Service
	galleryService *gallery.Service
	judgeService   *judge.Service
	exportService  *export.Service
	store          store.Store
}

func NewController(
	authService *auth.Service,
	contestService *contest.Service,
	entryService *entry.Service,
	galleryService *gallery.Service,
	judgeService *judge.Service,
	exportService *export.Service,
	store store.Store,
) *Controller {
	return &Controller{
		authService:    authService,
		contestService: contestService,
		entryService:   entryService,
		galleryService: galleryService,
		judgeService:   judgeService,
		exportService:  exportService,
		store:          store,
	}
}
